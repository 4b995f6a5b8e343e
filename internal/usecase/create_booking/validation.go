package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/pkg/types"
)

// validateRequest проверяет обязательные поля и форматы до любых
// обращений к состоянию
func validateRequest(req Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if domain.NormalizePhone(req.ClientPhone) == "" {
		return fmt.Errorf("%w: client phone is required", ErrValidation)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: service id is required", ErrValidation)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date %q is not in format %s", ErrValidation, req.Date, domain.DateFormat)
	}
	if _, err := types.NewTimeStringFromString(req.Time); err != nil {
		return fmt.Errorf("%w: time %q is not in format %s", ErrValidation, req.Time, domain.TimeFormat)
	}
	return nil
}
