package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserEmailExist          = errors.New("邮箱已注册")
	ErrUserUsernameExist       = errors.New("用户名已存在")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	ErrMealNotFound            = errors.New("用餐记录不存在")
	ErrTransportNotFound       = errors.New("出行记录不存在")
	ErrIngredientsEmpty        = errors.New("配料不能为空")
	ErrMealTypeInvalid         = errors.New("用餐类型无效")
	ErrDistanceInvalid         = errors.New("出行距离无效")
	ErrDateInFuture            = errors.New("日期不能晚于今天")
	ErrFriendSelf              = errors.New("不能添加自己为好友")
	ErrFriendExist             = errors.New("已经是好友")
	ErrFriendRequestExist      = errors.New("好友请求已存在")
	ErrFriendRequestNotFound   = errors.New("好友请求不存在")
	ErrFriendshipNotFound      = errors.New("好友关系不存在")
	ErrNotRequestRecipient     = errors.New("只有接收方可以处理该请求")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserEmailExist:          BadRequest,
	ErrUserUsernameExist:       BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrFileNotSupported:        BadRequest,
	ErrMealNotFound:            NotFound,
	ErrTransportNotFound:       NotFound,
	ErrIngredientsEmpty:        BadRequest,
	ErrMealTypeInvalid:         BadRequest,
	ErrDistanceInvalid:         BadRequest,
	ErrDateInFuture:            BadRequest,
	ErrFriendSelf:              BadRequest,
	ErrFriendExist:             Conflict,
	ErrFriendRequestExist:      Conflict,
	ErrFriendRequestNotFound:   NotFound,
	ErrFriendshipNotFound:      NotFound,
	ErrNotRequestRecipient:     Unauthorized,
	UnExpectedError:            InternalServerError,
}
