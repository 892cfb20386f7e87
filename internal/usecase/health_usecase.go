package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	provider    string
	mailMissing []string
}

// NewHealthUsecase reports liveness plus whether enquiries can be relayed.
func NewHealthUsecase(provider string, mailMissing []string) HealthUsecase {
	return &healthUsecase{provider: provider, mailMissing: mailMissing}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	mail := "configured"
	if len(u.mailMissing) > 0 {
		mail = "unconfigured"
	}
	return map[string]string{
		"status":   "ok",
		"mail":     mail,
		"provider": u.provider,
	}
}
