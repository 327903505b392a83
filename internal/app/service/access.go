package service

import "github.com/videohub/videohub/internal/app/models"

// privilegedRoles may watch any video regardless of price or purchase state.
var privilegedRoles = map[models.Role]bool{
	models.RoleAdmin: true,
}

// Decide is the single access predicate for paid content, shared by every
// entry point. A video is watchable when it is free, the caller is
// privileged, the caller owns it, or the caller holds a completed purchase.
func Decide(role models.Role, isOwner bool, price float64, purchased bool) bool {
	if price == 0 {
		return true
	}
	if privilegedRoles[role] {
		return true
	}
	if isOwner {
		return true
	}
	return purchased
}
