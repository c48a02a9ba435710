package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid           = errors.New("参数错误")
	ErrPostNotFound           = errors.New("帖子不存在")
	ErrInteractionTypeInvalid = errors.New("不支持的互动类型")
	ErrTimeframeInvalid       = errors.New("不支持的时间窗口")
	ErrWeightOutOfRange       = errors.New("权重分量必须位于[0,1]区间")
	ErrWeightSumInvalid       = errors.New("权重之和必须等于1.0")
	ErrWeightIncomplete       = errors.New("内联权重必须四项齐全")
	ErrProfileLoad            = errors.New("偏好画像加载失败")
	ErrUserBusy               = errors.New("操作过于频繁，请稍后重试")
	UnauthorizedError         = errors.New("权限不足")
	UnExpectedError           = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:           BadRequest,
	ErrPostNotFound:           NotFound,
	ErrInteractionTypeInvalid: BadRequest,
	ErrTimeframeInvalid:       BadRequest,
	ErrWeightOutOfRange:       BadRequest,
	ErrWeightSumInvalid:       BadRequest,
	ErrWeightIncomplete:       BadRequest,
	ErrProfileLoad:            InternalServerError,
	ErrUserBusy:               BadRequest,
	UnauthorizedError:         Unauthorized,
	UnExpectedError:           InternalServerError,
}
