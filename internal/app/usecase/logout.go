package usecase

import "context"

type LogoutOutput struct {
	Status string
	Detail string
}

type LogoutUsecase struct {
	gw SessionGateway
}

func NewLogoutUsecase(gw SessionGateway) *LogoutUsecase {
	return &LogoutUsecase{gw: gw}
}

func (u *LogoutUsecase) Execute(ctx context.Context) (*LogoutOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := u.gw.Logout(ctx); err != nil {
		return nil, err
	}

	return &LogoutOutput{Status: "success", Detail: "Logout realizado"}, nil
}
