package handler

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/pkg/minio"
	"Ecotrace/internal/pkg/response"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/service"
	"io"
	log "log/slog"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

func (s *ProfileHandler) GetMyProfile(c *gin.Context) {
	userId := c.GetUint64("user_id")

	profileDTO, err := s.profileSvc.GetProfile(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profileDTO)
}

func (s *ProfileHandler) GetProfile(c *gin.Context) {
	targetId, ok := parseIDParam(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	profileDTO, err := s.profileSvc.GetProfile(c.Request.Context(), targetId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profileDTO)
}

func (s *ProfileHandler) UpdateProfile(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var updateDTO dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err := s.profileSvc.UpdateProfile(c.Request.Context(), userId, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// UploadAvatar 头像上传，仅接受图片
func (s *ProfileHandler) UploadAvatar(c *gin.Context) {
	userId := c.GetUint64("user_id")

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	head := make([]byte, 512)
	n, err := reader.Read(head)
	if err != nil && err != io.EOF {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	contentType := util.DetectImageContentType(head[:n])
	if contentType == "" {
		response.Error(c, service.ErrFileNotSupported)
		return
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := "avatars/" + time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	if err = s.profileSvc.UpdateAvatar(c.Request.Context(), userId, fileKey); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, map[string]string{
		"url": minio.GetPublicURL(fileKey),
	})
}
