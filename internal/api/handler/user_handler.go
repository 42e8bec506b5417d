package handler

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/pkg/response"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Register(c *gin.Context) {
	var regDTO dto.RegisterDTO
	if err := c.ShouldBindJSON(&regDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&regDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err := s.userSvc.Register(c.Request.Context(), &regDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var credentialDTO dto.CredentialDTO
	if err := c.ShouldBindJSON(&credentialDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.userSvc.Login(c.Request.Context(), &credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{"token": token})
}

func (s *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Me(c *gin.Context) {
	userId := c.GetUint64("user_id")

	userDTO, err := s.userSvc.GetUserInfo(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, userDTO)
}

func (s *UserHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := getPagination(c)

	users, err := s.userSvc.SearchUsers(c.Request.Context(), keyword, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *UserHandler) UpdatePassword(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var changeDTO dto.ChangePasswordDTO
	if err := c.ShouldBindJSON(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&changeDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err := s.userSvc.UpdatePassword(c.Request.Context(), userId, &changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) UpdateUsername(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var changeDTO dto.ChangeUsernameDTO
	if err := c.ShouldBindJSON(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&changeDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err := s.userSvc.UpdateUsername(c.Request.Context(), userId, &changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Cancel(c *gin.Context) {
	userId := c.GetUint64("user_id")

	if err := s.userSvc.CancelUser(c.Request.Context(), userId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
