package implementation

import (
	"careerflow-be/internal/entity"
	"careerflow-be/internal/mapper"
	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/contract"

	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	*CrudStore[entity.Knowledge, model.Knowledge]
	*TrashOps[entity.Knowledge, model.Knowledge]
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	m := mapper.NewKnowledgeMapper()
	return &KnowledgeRepositoryImpl{
		CrudStore: NewCrudStore[entity.Knowledge, model.Knowledge](db, m),
		TrashOps:  NewTrashOps[entity.Knowledge, model.Knowledge](db, m, entity.TrashKindKnowledge),
	}
}
