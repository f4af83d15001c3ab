package supplierrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
)

// supplierModel mapeia a tabela suppliers.
type supplierModel struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	FirstName string  `gorm:"column:first_name"`
	LastName  string  `gorm:"column:last_name"`
	Phone     string  `gorm:"column:phone"`
	Email     *string `gorm:"column:email"`
	Address   string  `gorm:"column:address"`
}

func (supplierModel) TableName() string { return "suppliers" }

func toModel(s domain.Supplier) supplierModel {
	return supplierModel{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Phone:     s.Phone,
		Email:     s.Email,
		Address:   s.Address,
	}
}

func (m supplierModel) toDomain() domain.Supplier {
	return domain.Supplier{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
	}
}

// SupplierRepository implementa domain.SupplierRepository sobre o PostgreSQL via gorm.
type SupplierRepository struct {
	DB        *gorm.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewSupplierRepository cria e retorna uma nova instância do Repositório de Fornecedores.
func NewSupplierRepository(db *gorm.DB, dbTimeout time.Duration, log logger.Logger) *SupplierRepository {
	return &SupplierRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log.WithComponent("repository/supplier"),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindPage lista fornecedores por cursor: id < LastID (quando > 0), ordem decrescente de id.
// A busca é um LIKE sensível a maiúsculas em qualquer uma das cinco colunas de texto.
func (r *SupplierRepository) FindPage(ctx context.Context, filter domain.SupplierFilter) ([]domain.Supplier, error) {
	filter = filter.Normalize()
	r.logger.Debug("Listando fornecedores.", map[string]interface{}{"last_id": filter.LastID, "limit": filter.Limit, "search": filter.Search})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	q := r.DB.WithContext(ctxTimeout).Model(&supplierModel{})
	if filter.Search != "" {
		like := "%" + likeEscaper.Replace(filter.Search) + "%"
		q = q.Where("(first_name LIKE ? OR last_name LIKE ? OR phone LIKE ? OR email LIKE ? OR address LIKE ?)",
			like, like, like, like, like)
	}
	if filter.LastID > 0 {
		q = q.Where("id < ?", filter.LastID)
	}

	var rows []supplierModel
	if err := q.Order("id DESC").Limit(filter.Limit).Find(&rows).Error; err != nil {
		r.logger.Error("Falha ao listar fornecedores no DB.", err)
		return nil, apperror.NewDBError("failed to list suppliers", err)
	}

	suppliers := make([]domain.Supplier, 0, len(rows))
	for _, m := range rows {
		suppliers = append(suppliers, m.toDomain())
	}
	return suppliers, nil
}

// FindByID busca um fornecedor pelo ID.
func (r *SupplierRepository) FindByID(ctx context.Context, id int64) (domain.Supplier, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var m supplierModel
	err := r.DB.WithContext(ctxTimeout).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Fornecedor não encontrado.", map[string]interface{}{"id": id})
		return domain.Supplier{}, apperror.NewNotFoundError(fmt.Sprintf("supplier %d not found", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar fornecedor no DB.", err)
		return domain.Supplier{}, apperror.NewDBError("failed to get supplier", err)
	}
	return m.toDomain(), nil
}

// Create insere um novo fornecedor; o ID é gerado pelo banco.
func (r *SupplierRepository) Create(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	m := toModel(supplier)
	m.ID = 0
	if err := r.DB.WithContext(ctxTimeout).Create(&m).Error; err != nil {
		r.logger.Error("Falha ao inserir fornecedor no DB.", err)
		return domain.Supplier{}, apperror.NewDBError("failed to create supplier", err)
	}

	r.logger.Info("Fornecedor criado.", map[string]interface{}{"id": m.ID})
	return m.toDomain(), nil
}

// CreateMany insere vários fornecedores numa única transação.
func (r *SupplierRepository) CreateMany(ctx context.Context, suppliers []domain.Supplier) ([]domain.Supplier, error) {
	if len(suppliers) == 0 {
		return []domain.Supplier{}, nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	models := make([]supplierModel, 0, len(suppliers))
	for _, s := range suppliers {
		m := toModel(s)
		m.ID = 0
		models = append(models, m)
	}

	err := r.DB.WithContext(ctxTimeout).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&models, 100).Error
	})
	if err != nil {
		r.logger.Error("Falha ao importar fornecedores no DB.", err)
		return nil, apperror.NewDBError("failed to import suppliers", err)
	}

	created := make([]domain.Supplier, 0, len(models))
	for _, m := range models {
		created = append(created, m.toDomain())
	}
	r.logger.Info("Fornecedores importados.", map[string]interface{}{"count": len(created)})
	return created, nil
}

// Update substitui os cinco campos do fornecedor.
func (r *SupplierRepository) Update(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var m supplierModel
	res := r.DB.WithContext(ctxTimeout).
		Model(&m).
		Clauses(clause.Returning{}).
		Where("id = ?", supplier.ID).
		Updates(map[string]interface{}{
			"first_name": supplier.FirstName,
			"last_name":  supplier.LastName,
			"phone":      supplier.Phone,
			"email":      supplier.Email,
			"address":    supplier.Address,
		})
	if res.Error != nil {
		r.logger.Error("Falha ao atualizar fornecedor no DB.", res.Error)
		return domain.Supplier{}, apperror.NewDBError("failed to update supplier", res.Error)
	}
	if res.RowsAffected == 0 {
		r.logger.Info("Fornecedor não encontrado para atualização.", map[string]interface{}{"id": supplier.ID})
		return domain.Supplier{}, apperror.NewNotFoundError(fmt.Sprintf("supplier %d not found", supplier.ID))
	}

	r.logger.Info("Fornecedor atualizado.", map[string]interface{}{"id": m.ID})
	return m.toDomain(), nil
}

// Delete remove fisicamente o fornecedor e devolve a linha removida.
func (r *SupplierRepository) Delete(ctx context.Context, id int64) (domain.Supplier, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var m supplierModel
	res := r.DB.WithContext(ctxTimeout).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&m)
	if res.Error != nil {
		r.logger.Error("Falha ao deletar fornecedor do DB.", res.Error)
		return domain.Supplier{}, apperror.NewDBError("failed to delete supplier", res.Error)
	}
	if res.RowsAffected == 0 {
		r.logger.Info("Fornecedor não encontrado para exclusão.", map[string]interface{}{"id": id})
		return domain.Supplier{}, apperror.NewNotFoundError(fmt.Sprintf("supplier %d not found", id))
	}

	r.logger.Info("Fornecedor deletado.", map[string]interface{}{"id": id})
	return m.toDomain(), nil
}
