package specification

import "gorm.io/gorm"

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// TitleOrCompanyLike matches jobs whose title or company contains the term
type TitleOrCompanyLike struct {
	Term string
}

func (s TitleOrCompanyLike) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + s.Term + "%"
	return db.Where("title LIKE ? OR company LIKE ?", like, like)
}
