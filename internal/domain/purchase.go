package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderCodePrefix é o prefixo dos códigos de compra.
const OrderCodePrefix = "PUR-"

// Purchase é o cabeçalho de uma compra. Criada uma vez e nunca alterada.
type Purchase struct {
	ID         int64            `json:"id"`
	Code       string           `json:"code"`
	Date       time.Time        `json:"date"`
	Note       *string          `json:"note"`
	Ppn        decimal.Decimal  `json:"ppn"`
	GrandTotal decimal.Decimal  `json:"grandTotal"`
	UserID     int64            `json:"userId"`
	CreatedAt  time.Time        `json:"createdAt"`
	Details    []PurchaseDetail `json:"detail"`
}

// PurchaseDetail é uma linha da compra. ProductName é um snapshot do nome no momento da compra.
type PurchaseDetail struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Qty         int64           `json:"qty"`
	Total       decimal.Decimal `json:"total"`
	PurchaseID  int64           `json:"purchaseId"`
}

// PurchaseRequest é o payload de criação de compra, já normalizado após o decode.
type PurchaseRequest struct {
	Date       *Date           `json:"date" validate:"required"`
	Note       *string         `json:"note"`
	Ppn        decimal.Decimal `json:"ppn" validate:"money"`
	GrandTotal decimal.Decimal `json:"grandTotal" validate:"money"`
	UserID     Int             `json:"userId" validate:"required,gte=0"`
	Detail     []PurchaseLine  `json:"detail" validate:"dive"`
}

// PurchaseLine é um item do payload de compra.
type PurchaseLine struct {
	Product    LineProduct     `json:"product"`
	Price      decimal.Decimal `json:"price" validate:"money"`
	Qty        Int             `json:"qty" validate:"gte=0"`
	TotalPrice decimal.Decimal `json:"totalPrice" validate:"money"`
}

// LineProduct identifica o produto de uma linha.
type LineProduct struct {
	ProductID   Int    `json:"productId" validate:"gte=0"`
	ProductName string `json:"productName" validate:"max=255"`
}

// Header monta o cabeçalho a ser persistido com o código gerado.
func (r PurchaseRequest) Header(code string) Purchase {
	p := Purchase{
		Code:       code,
		Note:       r.Note,
		Ppn:        r.Ppn,
		GrandTotal: r.GrandTotal,
		UserID:     r.UserID.Int64(),
	}
	if r.Date != nil {
		p.Date = r.Date.Time
	}
	return p
}

// DetailFor monta a linha persistida para a compra informada.
// O total vem do payload e não é conferido contra price * qty.
func (l PurchaseLine) DetailFor(purchaseID int64) PurchaseDetail {
	return PurchaseDetail{
		ProductID:   l.Product.ProductID.Int64(),
		ProductName: l.Product.ProductName,
		Price:       l.Price,
		Qty:         l.Qty.Int64(),
		Total:       l.TotalPrice,
		PurchaseID:  purchaseID,
	}
}

// PurchaseTx expõe as operações executadas dentro da transação de compra.
// Toda escrita feita por ele é desfeita se a callback de WithinTx retornar erro.
type PurchaseTx interface {
	CreatePurchase(ctx context.Context, purchase Purchase) (Purchase, error)
	CreateDetail(ctx context.Context, detail PurchaseDetail) (PurchaseDetail, error)
	IncrementStock(ctx context.Context, productID int64, qty int64) error
}

// PurchaseRepository é o contrato de persistência de compras.
type PurchaseRepository interface {
	// WithinTx executa fn numa transação: commit se fn retornar nil, rollback caso contrário.
	WithinTx(ctx context.Context, fn func(tx PurchaseTx) error) error
	FindByID(ctx context.Context, id int64) (Purchase, error)
}
