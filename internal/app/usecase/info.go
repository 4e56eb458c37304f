package usecase

import (
	"context"
)

type InfoOutput struct {
	WID      string
	PushName string
	Platform string
}

type InfoUsecase struct {
	gw SessionGateway
}

func NewInfoUsecase(gw SessionGateway) *InfoUsecase {
	return &InfoUsecase{gw: gw}
}

func (u *InfoUsecase) Execute(ctx context.Context) (*InfoOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := u.gw.OwnerInfo()
	if err != nil {
		return nil, err
	}

	return &InfoOutput{
		WID:      info.WID,
		PushName: info.PushName,
		Platform: info.Platform,
	}, nil
}
