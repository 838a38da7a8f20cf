package implementation

import (
	"careerflow-be/internal/entity"
	"careerflow-be/internal/mapper"
	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/contract"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	*CrudStore[entity.User, model.User]
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		CrudStore: NewCrudStore[entity.User, model.User](db, mapper.NewUserMapper()),
	}
}
