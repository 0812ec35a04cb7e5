package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/internal/domain/repository"
	"github.com/storelinehq/storeline-api/pkg/apperror"
	"github.com/storelinehq/storeline-api/pkg/pagination"
	"github.com/storelinehq/storeline-api/pkg/utils"
)

// totalTolerance is the maximum accepted drift between the client-stated
// total and the sum of the sale's lines.
var totalTolerance = decimal.NewFromFloat(0.01)

// SaleService handles the sale transaction engine
type SaleService struct {
	saleRepo     repository.SaleRepository
	saleLineRepo repository.SaleLineRepository
	receiptRepo  repository.ReceiptRepository
	stockRepo    repository.StockRepository
	storeRepo    repository.StoreRepository
	registerRepo repository.RegisterRepository
	employeeRepo repository.EmployeeRepository
	skuRepo      repository.SKURepository
	txManager    repository.TxManager
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	saleLineRepo repository.SaleLineRepository,
	receiptRepo repository.ReceiptRepository,
	stockRepo repository.StockRepository,
	storeRepo repository.StoreRepository,
	registerRepo repository.RegisterRepository,
	employeeRepo repository.EmployeeRepository,
	skuRepo repository.SKURepository,
	txManager repository.TxManager,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		saleLineRepo: saleLineRepo,
		receiptRepo:  receiptRepo,
		stockRepo:    stockRepo,
		storeRepo:    storeRepo,
		registerRepo: registerRepo,
		employeeRepo: employeeRepo,
		skuRepo:      skuRepo,
		txManager:    txManager,
	}
}

// SaleLineInput represents one line of a sale request
type SaleLineInput struct {
	SKUID     uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	StoreID       uuid.UUID
	RegisterID    uuid.UUID
	CashierID     uuid.UUID
	TotalAmount   decimal.Decimal
	PaymentMethod string
	Lines         []SaleLineInput
}

// CreateSale commits a sale: the sale row, its lines, one SALE movement
// per line and the receipt are written in a single transaction. Each line
// carries the price the register charged, which may differ from the SKU's
// base price; the client-stated total must match the sum of the lines
// within the tolerance. If any line lacks stock the whole sale is rolled
// back.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	paymentMethod, ok := enum.ParsePaymentMethod(input.PaymentMethod)
	if !ok {
		return nil, apperror.NewBadRequestError("Invalid payment method: " + input.PaymentMethod)
	}

	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one line")
	}
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
		if !line.UnitPrice.IsPositive() {
			return nil, apperror.NewBadRequestError("Line unit price must be positive")
		}
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	register, err := s.registerRepo.GetByID(ctx, input.RegisterID)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.NewNotFoundError("Register")
	}
	if register.StoreID != input.StoreID {
		return nil, apperror.NewBadRequestError("Register does not belong to the given store")
	}

	cashier, err := s.employeeRepo.GetByID(ctx, input.CashierID)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, apperror.NewNotFoundError("Cashier")
	}

	// Batch fetch all SKUs in one query
	skuIDs := make([]uuid.UUID, len(input.Lines))
	for i, line := range input.Lines {
		skuIDs[i] = line.SKUID
	}
	skus, err := s.skuRepo.GetByIDs(ctx, skuIDs)
	if err != nil {
		return nil, err
	}
	skuMap := make(map[uuid.UUID]*entity.SKU, len(skus))
	for i := range skus {
		skuMap[skus[i].ID] = &skus[i]
	}

	linesTotal := decimal.Zero
	saleLines := make([]entity.SaleLine, 0, len(input.Lines))
	for _, line := range input.Lines {
		if _, exists := skuMap[line.SKUID]; !exists {
			return nil, apperror.NewNotFoundError("SKU " + line.SKUID.String())
		}

		lineTotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		linesTotal = linesTotal.Add(lineTotal)
		saleLines = append(saleLines, entity.SaleLine{
			SKUID:     line.SKUID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	if input.TotalAmount.Sub(linesTotal).Abs().GreaterThan(totalTolerance) {
		return nil, apperror.NewBadRequestError(
			"Total amount " + input.TotalAmount.StringFixed(2) +
				" does not match sum of lines " + linesTotal.StringFixed(2))
	}

	sale := &entity.Sale{
		StoreID:       input.StoreID,
		RegisterID:    input.RegisterID,
		CashierID:     input.CashierID,
		TotalAmount:   input.TotalAmount,
		PaymentMethod: paymentMethod,
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		for i := range saleLines {
			saleLines[i].SaleID = sale.ID
		}
		if err := s.saleLineRepo.CreateBatch(ctx, saleLines); err != nil {
			return err
		}

		for _, line := range saleLines {
			level, err := s.stockRepo.EnsureLevel(ctx, input.StoreID, line.SKUID)
			if err != nil {
				return err
			}

			updated, ok, err := s.stockRepo.AddQuantity(ctx, level.ID, -line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				sku := skuMap[line.SKUID]
				return apperror.NewInsufficientStockError(sku.SKUCode, updated.Quantity, line.Quantity)
			}

			movement := &entity.StockMovement{
				StockLevelID:    level.ID,
				MovementType:    enum.MovementTypeSale,
				QuantityChanged: -line.Quantity,
			}
			if err := s.stockRepo.CreateMovement(ctx, movement); err != nil {
				return err
			}
		}

		receipt := &entity.Receipt{
			SaleID:        sale.ID,
			ReceiptNumber: utils.GenerateReceiptNumber(sale.ID, time.Now().UTC()),
		}
		return s.receiptRepo.Create(ctx, receipt)
	})
	if err != nil {
		return nil, err
	}

	return s.saleRepo.GetWithDetails(ctx, sale.ID)
}

// GetSale returns a sale with its lines, receipt and references
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSalesInput represents the list sales input
type ListSalesInput struct {
	Pagination *pagination.PaginationParams
	StoreID    *uuid.UUID
	CashierID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListSales returns a paginated list of sales
func (s *SaleService) ListSales(ctx context.Context, input *ListSalesInput) (*pagination.PaginatedResult[entity.Sale], error) {
	params := &repository.SaleFilterParams{
		Pagination: input.Pagination,
		StoreID:    input.StoreID,
		CashierID:  input.CashierID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Sale]{
		Items:      sales,
		Pagination: pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total),
	}, nil
}

// SalesToday returns the sales committed since midnight UTC
func (s *SaleService) SalesToday(ctx context.Context, pag *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return s.ListSales(ctx, &ListSalesInput{
		Pagination: pag,
		StartDate:  &start,
		EndDate:    &now,
	})
}

// SalesSummary aggregates sale count and revenue over a period
type SalesSummary struct {
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
	Start   time.Time       `json:"start"`
	End     time.Time       `json:"end"`
}

// Summary returns sale count and total revenue between start and end
func (s *SaleService) Summary(ctx context.Context, start, end time.Time) (*SalesSummary, error) {
	if end.Before(start) {
		return nil, apperror.NewBadRequestError("End date must not precede start date")
	}

	count, revenue, err := s.saleRepo.Summary(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &SalesSummary{
		Count:   count,
		Revenue: revenue,
		Start:   start,
		End:     end,
	}, nil
}

// GetReceipt returns the receipt of a sale
func (s *SaleService) GetReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	receipt, err := s.receiptRepo.GetBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}
