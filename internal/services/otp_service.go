package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"

	"github.com/example/freshcart/internal/models"
)

// ErrOTPInvalid is returned when no matching, unused, unexpired code exists.
var ErrOTPInvalid = errors.New("invalid or expired OTP")

// OTPService issues and verifies single-use login codes.
type OTPService struct {
	db  *gorm.DB
	sms *SMSService
	ttl time.Duration
}

// NewOTPService constructs an OTPService.
func NewOTPService(db *gorm.DB, sms *SMSService, ttl time.Duration) *OTPService {
	return &OTPService{db: db, sms: sms, ttl: ttl}
}

// Issue generates a fresh code for the phone, persists it with an expiry and
// hands it to the SMS collaborator. Earlier unused codes stay valid; Verify
// always picks the newest one.
func (s *OTPService) Issue(phone string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	record := models.OTP{
		Phone:     phone,
		Code:      code,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", err
	}

	if err := s.sms.SendOTP(phone, code); err != nil {
		return "", err
	}

	return code, nil
}

// Verify consumes the newest matching unused unexpired code for the phone.
// A consumed code can never verify again.
func (s *OTPService) Verify(phone, code string) error {
	var record models.OTP
	err := s.db.
		Where("phone = ? AND code = ? AND is_used = ? AND expires_at > ?", phone, code, false, time.Now()).
		Order("created_at desc").
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrOTPInvalid
		}
		return err
	}

	return s.db.Model(&record).Update("is_used", true).Error
}

func generateCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
