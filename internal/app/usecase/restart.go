package usecase

import "context"

type RestartOutput struct {
	Status string
}

type RestartUsecase struct {
	gw SessionGateway
}

func NewRestartUsecase(gw SessionGateway) *RestartUsecase {
	return &RestartUsecase{gw: gw}
}

// Execute tears the client down and starts a fresh initialize. It returns
// once the connection attempt is underway; callers poll status for ready.
func (u *RestartUsecase) Execute(ctx context.Context) (*RestartOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := u.gw.Restart(ctx); err != nil {
		return nil, err
	}

	return &RestartOutput{Status: "restarting"}, nil
}
