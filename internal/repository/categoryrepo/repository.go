package categoryrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/database"
	"gosupply/internal/pkg/logger"
)

type categoryModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (categoryModel) TableName() string { return "categories" }

func (m categoryModel) toDomain() domain.Category {
	return domain.Category{ID: m.ID, Name: m.Name}
}

// CategoryRepository implementa domain.CategoryRepository sobre o gorm.
type CategoryRepository struct {
	DB        *gorm.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewCategoryRepository cria e retorna uma nova instância do Repositório de Categorias.
func NewCategoryRepository(db *gorm.DB, dbTimeout time.Duration, log logger.Logger) *CategoryRepository {
	return &CategoryRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log.WithComponent("repository/category"),
	}
}

// FindAll lista todas as categorias em ordem de nome.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []categoryModel
	if err := r.DB.WithContext(ctxTimeout).Order("name ASC, id ASC").Find(&rows).Error; err != nil {
		r.logger.Error("Falha ao listar categorias no DB.", err)
		return nil, apperror.NewDBError("failed to list categories", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, m := range rows {
		categories = append(categories, m.toDomain())
	}
	return categories, nil
}

// FindByID busca uma categoria pelo ID.
func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (domain.Category, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var m categoryModel
	err := r.DB.WithContext(ctxTimeout).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Category{}, apperror.NewNotFoundError(fmt.Sprintf("category %d not found", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar categoria no DB.", err)
		return domain.Category{}, apperror.NewDBError("failed to get category", err)
	}
	return m.toDomain(), nil
}

// Create insere uma nova categoria.
func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	m := categoryModel{Name: category.Name}
	if err := r.DB.WithContext(ctxTimeout).Create(&m).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Category{}, apperror.NewConflictError(fmt.Sprintf("category %s already exists", category.Name))
		}
		r.logger.Error("Falha ao inserir categoria no DB.", err)
		return domain.Category{}, apperror.NewDBError("failed to create category", err)
	}

	r.logger.Info("Categoria criada.", map[string]interface{}{"id": m.ID})
	return m.toDomain(), nil
}

// Update renomeia a categoria.
func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) (domain.Category, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var m categoryModel
	res := r.DB.WithContext(ctxTimeout).
		Model(&m).
		Clauses(clause.Returning{}).
		Where("id = ?", category.ID).
		Update("name", category.Name)
	if res.Error != nil {
		if database.IsUniqueViolation(res.Error) {
			return domain.Category{}, apperror.NewConflictError(fmt.Sprintf("category %s already exists", category.Name))
		}
		r.logger.Error("Falha ao atualizar categoria no DB.", res.Error)
		return domain.Category{}, apperror.NewDBError("failed to update category", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.Category{}, apperror.NewNotFoundError(fmt.Sprintf("category %d not found", category.ID))
	}
	return m.toDomain(), nil
}

// Delete remove a categoria; o banco zera category_id dos produtos (ON DELETE SET NULL).
func (r *CategoryRepository) Delete(ctx context.Context, id int64) (domain.Category, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var m categoryModel
	res := r.DB.WithContext(ctxTimeout).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&m)
	if res.Error != nil {
		r.logger.Error("Falha ao deletar categoria do DB.", res.Error)
		return domain.Category{}, apperror.NewDBError("failed to delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.Category{}, apperror.NewNotFoundError(fmt.Sprintf("category %d not found", id))
	}

	r.logger.Info("Categoria deletada.", map[string]interface{}{"id": id})
	return m.toDomain(), nil
}
