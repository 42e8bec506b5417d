package handler

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/pkg/response"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/service"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	mealSvc service.MealService
}

func NewMealHandler(mealSvc service.MealService) *MealHandler {
	return &MealHandler{mealSvc: mealSvc}
}

func (s *MealHandler) Create(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var createDTO dto.CreateMealDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	mealDTO, err := s.mealSvc.CreateMeal(c.Request.Context(), userId, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, mealDTO)
}

func (s *MealHandler) Get(c *gin.Context) {
	userId := c.GetUint64("user_id")
	mealId, ok := parseIDParam(c, "meal_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	mealDTO, err := s.mealSvc.GetMeal(c.Request.Context(), userId, mealId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, mealDTO)
}

func (s *MealHandler) List(c *gin.Context) {
	userId := c.GetUint64("user_id")
	limit, offset := getPagination(c)

	meals, err := s.mealSvc.GetMeals(c.Request.Context(), userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, meals)
}

func (s *MealHandler) Update(c *gin.Context) {
	userId := c.GetUint64("user_id")
	mealId, ok := parseIDParam(c, "meal_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateMealDTO
	if err := c.ShouldBindJSON(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	mealDTO, err := s.mealSvc.UpdateMeal(c.Request.Context(), userId, mealId, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, mealDTO)
}

func (s *MealHandler) Delete(c *gin.Context) {
	userId := c.GetUint64("user_id")
	mealId, ok := parseIDParam(c, "meal_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.mealSvc.DeleteMeal(c.Request.Context(), userId, mealId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
