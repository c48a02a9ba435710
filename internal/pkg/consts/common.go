package consts

const (
	PostStatusNormal = 1
	PostStatusHidden = 2
)
