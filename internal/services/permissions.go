package services

import "github.com/sbilibin2017/gw-social-graph/internal/models"

// CanWrite reports whether principal may modify the resource owned by ownerID.
func CanWrite(principal models.Principal, ownerID int64) bool {
	return principal.UserID == ownerID || principal.IsStaff
}
