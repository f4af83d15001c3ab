package purchaserepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/database"
	"gosupply/internal/pkg/logger"
)

type purchaseModel struct {
	ID         int64           `gorm:"column:id;primaryKey"`
	Code       string          `gorm:"column:code"`
	Date       time.Time       `gorm:"column:date"`
	Note       *string         `gorm:"column:note"`
	Ppn        decimal.Decimal `gorm:"column:ppn;type:numeric(15,2)"`
	GrandTotal decimal.Decimal `gorm:"column:grand_total;type:numeric(15,2)"`
	UserID     int64           `gorm:"column:user_id"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
}

func (purchaseModel) TableName() string { return "purchases" }

type detailModel struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	ProductID   int64           `gorm:"column:product_id"`
	ProductName string          `gorm:"column:product_name"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(15,2)"`
	Qty         int64           `gorm:"column:qty"`
	Total       decimal.Decimal `gorm:"column:total;type:numeric(15,2)"`
	PurchaseID  int64           `gorm:"column:purchase_id"`
}

func (detailModel) TableName() string { return "purchase_details" }

type productModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
	Qty  int64  `gorm:"column:qty"`
}

func (productModel) TableName() string { return "products" }

func (m purchaseModel) toDomain() domain.Purchase {
	return domain.Purchase{
		ID:         m.ID,
		Code:       m.Code,
		Date:       m.Date,
		Note:       m.Note,
		Ppn:        m.Ppn,
		GrandTotal: m.GrandTotal,
		UserID:     m.UserID,
		CreatedAt:  m.CreatedAt,
	}
}

func (m detailModel) toDomain() domain.PurchaseDetail {
	return domain.PurchaseDetail{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Price:       m.Price,
		Qty:         m.Qty,
		Total:       m.Total,
		PurchaseID:  m.PurchaseID,
	}
}

// PurchaseRepository implementa domain.PurchaseRepository com transações do gorm.
type PurchaseRepository struct {
	DB        *gorm.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewPurchaseRepository cria e retorna uma nova instância do Repositório de Compras.
func NewPurchaseRepository(db *gorm.DB, dbTimeout time.Duration, log logger.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log.WithComponent("repository/purchase"),
	}
}

// WithinTx abre uma transação, executa fn e faz commit apenas se fn retornar nil.
func (r *PurchaseRepository) WithinTx(ctx context.Context, fn func(tx domain.PurchaseTx) error) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{tx: tx, timeout: r.DBTimeout, logger: r.logger})
	})
	if err != nil {
		r.logger.Debug("Transação de compra desfeita.", map[string]interface{}{"error": err.Error()})
	}
	return err
}

// FindByID busca o cabeçalho e as linhas de uma compra.
func (r *PurchaseRepository) FindByID(ctx context.Context, id int64) (domain.Purchase, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db := r.DB.WithContext(ctxTimeout)

	var header purchaseModel
	err := db.Where("id = ?", id).Take(&header).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Purchase{}, apperror.NewNotFoundError(fmt.Sprintf("purchase %d not found", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar compra no DB.", err)
		return domain.Purchase{}, apperror.NewDBError("failed to get purchase", err)
	}

	var rows []detailModel
	if err := db.Where("purchase_id = ?", id).Order("id").Find(&rows).Error; err != nil {
		r.logger.Error("Falha ao buscar linhas da compra no DB.", err)
		return domain.Purchase{}, apperror.NewDBError("failed to get purchase details", err)
	}

	purchase := header.toDomain()
	purchase.Details = make([]domain.PurchaseDetail, 0, len(rows))
	for _, d := range rows {
		purchase.Details = append(purchase.Details, d.toDomain())
	}
	return purchase, nil
}

// gormTx executa as operações da compra dentro da transação aberta por WithinTx.
type gormTx struct {
	tx      *gorm.DB
	timeout time.Duration
	logger  logger.Logger
}

func (t *gormTx) CreatePurchase(ctx context.Context, purchase domain.Purchase) (domain.Purchase, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	m := purchaseModel{
		Code:       purchase.Code,
		Date:       purchase.Date,
		Note:       purchase.Note,
		Ppn:        purchase.Ppn,
		GrandTotal: purchase.GrandTotal,
		UserID:     purchase.UserID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := t.tx.WithContext(ctxTimeout).Create(&m).Error; err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return domain.Purchase{}, apperror.NewConflictError(fmt.Sprintf("purchase code %s already exists", purchase.Code))
		case database.IsForeignKeyViolation(err):
			return domain.Purchase{}, apperror.NewNotFoundError(fmt.Sprintf("user %d not found", purchase.UserID))
		}
		t.logger.Error("Falha ao inserir compra no DB.", err)
		return domain.Purchase{}, apperror.NewDBError("failed to create purchase", err)
	}

	t.logger.Debug("Cabeçalho da compra inserido.", map[string]interface{}{"id": m.ID, "code": m.Code})
	return m.toDomain(), nil
}

func (t *gormTx) CreateDetail(ctx context.Context, detail domain.PurchaseDetail) (domain.PurchaseDetail, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	m := detailModel{
		ProductID:   detail.ProductID,
		ProductName: detail.ProductName,
		Price:       detail.Price,
		Qty:         detail.Qty,
		Total:       detail.Total,
		PurchaseID:  detail.PurchaseID,
	}

	if err := t.tx.WithContext(ctxTimeout).Create(&m).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.PurchaseDetail{}, apperror.NewNotFoundError(fmt.Sprintf("product %d not found", detail.ProductID))
		}
		t.logger.Error("Falha ao inserir linha da compra no DB.", err)
		return domain.PurchaseDetail{}, apperror.NewDBError("failed to create purchase detail", err)
	}
	return m.toDomain(), nil
}

// IncrementStock soma qty ao saldo com UPDATE atômico (qty = qty + ?).
func (t *gormTx) IncrementStock(ctx context.Context, productID int64, qty int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	res := t.tx.WithContext(ctxTimeout).
		Model(&productModel{}).
		Where("id = ?", productID).
		UpdateColumn("qty", gorm.Expr("qty + ?", qty))
	if res.Error != nil {
		t.logger.Error("Falha ao incrementar estoque no DB.", res.Error)
		return apperror.NewDBError("failed to increment stock", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("product %d not found", productID))
	}
	return nil
}
