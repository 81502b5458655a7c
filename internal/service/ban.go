package service

import (
	"time"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
)

// checkBan rejects actors that are currently banned. The core only
// consumes the classification; issuing bans lives in the admin layer.
func checkBan(user *domain.User, maxBanCount int) error {
	switch user.ClassifyBan(maxBanCount, time.Now()) {
	case domain.BanPermanent:
		return common.ErrUserPermanentlyBanned
	case domain.BanTemporary:
		return common.ErrUserBanned
	}
	return nil
}
