package handler

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/pkg/response"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/service"

	"github.com/gin-gonic/gin"
)

type TransportHandler struct {
	transportSvc service.TransportService
}

func NewTransportHandler(transportSvc service.TransportService) *TransportHandler {
	return &TransportHandler{transportSvc: transportSvc}
}

func (s *TransportHandler) Create(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var createDTO dto.CreateTransportDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	transportDTO, err := s.transportSvc.CreateTransport(c.Request.Context(), userId, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, transportDTO)
}

func (s *TransportHandler) Get(c *gin.Context) {
	userId := c.GetUint64("user_id")
	transportId, ok := parseIDParam(c, "transport_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	transportDTO, err := s.transportSvc.GetTransport(c.Request.Context(), userId, transportId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, transportDTO)
}

func (s *TransportHandler) List(c *gin.Context) {
	userId := c.GetUint64("user_id")
	limit, offset := getPagination(c)

	transports, err := s.transportSvc.GetTransports(c.Request.Context(), userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, transports)
}

func (s *TransportHandler) Update(c *gin.Context) {
	userId := c.GetUint64("user_id")
	transportId, ok := parseIDParam(c, "transport_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateTransportDTO
	if err := c.ShouldBindJSON(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	transportDTO, err := s.transportSvc.UpdateTransport(c.Request.Context(), userId, transportId, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, transportDTO)
}

func (s *TransportHandler) Delete(c *gin.Context) {
	userId := c.GetUint64("user_id")
	transportId, ok := parseIDParam(c, "transport_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.transportSvc.DeleteTransport(c.Request.Context(), userId, transportId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
