package specification

import "gorm.io/gorm"

// ByShareId resolves a summary by its public share identifier.
type ByShareId struct {
	ShareId string
}

func (s ByShareId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("share_id = ?", s.ShareId)
}
