package productrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/database"
	"gosupply/internal/pkg/logger"
)

type productModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	Name       string `gorm:"column:name"`
	Qty        int64  `gorm:"column:qty"`
	CategoryID *int64 `gorm:"column:category_id"`
}

func (productModel) TableName() string { return "products" }

func (m productModel) toDomain() domain.Product {
	return domain.Product{ID: m.ID, Name: m.Name, Qty: m.Qty, CategoryID: m.CategoryID}
}

// ProductRepository implementa domain.ProductRepository sobre o gorm.
type ProductRepository struct {
	DB        *gorm.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
func NewProductRepository(db *gorm.DB, dbTimeout time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log.WithComponent("repository/product"),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Save insere um novo produto com o saldo inicial informado.
func (r *ProductRepository) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	m := productModel{Name: product.Name, Qty: product.Qty, CategoryID: product.CategoryID}
	if err := r.DB.WithContext(ctxTimeout).Create(&m).Error; err != nil {
		if database.IsForeignKeyViolation(err) && product.CategoryID != nil {
			return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("category %d not found", *product.CategoryID))
		}
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("failed to create product", err)
	}
	return m.toDomain(), nil
}

// FindByID busca um produto pelo ID.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var m productModel
	err := r.DB.WithContext(ctxTimeout).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("product %d not found", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("failed to get product", err)
	}
	return m.toDomain(), nil
}

// FindAll lista o catálogo em ordem de id, com paginação por página, filtro ILIKE
// por nome e filtro opcional por categoria.
func (r *ProductRepository) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	filter = filter.Normalize()

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	q := r.DB.WithContext(ctxTimeout).Model(&productModel{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+likeEscaper.Replace(filter.Name)+"%")
	}
	if filter.CategoryID > 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	var rows []productModel
	if err := q.Order("id ASC").Offset(filter.Offset()).Limit(filter.Limit).Find(&rows).Error; err != nil {
		r.logger.Error("Falha ao listar produtos no DB.", err)
		return nil, apperror.NewDBError("failed to list products", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, m := range rows {
		products = append(products, m.toDomain())
	}
	return products, nil
}
