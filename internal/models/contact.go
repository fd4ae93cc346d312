package models

// Contact is an undirected edge between two distinct users. The pair
// is deduplicated regardless of column order: (a,b) and (b,a) denote
// the same contact and only one row may exist for it.
type Contact struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID1 uint `gorm:"not null;index;check:user_id1 <> user_id2" json:"userId1"`
	UserID2 uint `gorm:"not null;index" json:"userId2"`
}
