package services_test

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *ServiceTestSuite) TestCreateSale_ComputesTotals() {
	product := s.createProduct("Espresso machine", strPtr("4006381333931"), "100", 20)

	inv, err := s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: product.ID, Price: dec("100"), Quantity: 2},
			{ProductID: product.ID, Price: dec("100"), Quantity: 1, DiscountPercent: 10, DiscountAmount: dec("5")},
		},
		DiscountPercent: 5,
		DiscountAmount:  dec("10"),
		Paid:            dec("200"),
	}, s.admin.ID)
	s.Require().NoError(err)

	s.Equal(domain.InvoiceTypeSale, inv.Type)
	s.assertDecimal("285", inv.Subtotal)
	s.assertDecimal("260.75", inv.Total)
	s.assertDecimal("200", inv.Paid)
	s.assertDecimal("60.75", inv.Remaining)
	s.Require().Len(inv.Items, 2)
	s.assertDecimal("200", inv.Items[0].Total)
	s.assertDecimal("100", inv.Items[1].Subtotal)
	s.assertDecimal("85", inv.Items[1].Total)
	s.Equal("Espresso machine", inv.Items[0].Description)
	s.Equal(s.admin.ID, inv.Cashier.ID)
	s.NotEmpty(inv.TransactionID)

	s.Equal(int64(17), s.stockOf(product.ID))
	s.assertDecimal("200", s.balance())
	s.assertLedgerConsistent()
}

func (s *ServiceTestSuite) TestCreateSale_SnapshotSurvivesProductEdit() {
	product := s.createProduct("Grinder", nil, "40", 5)
	created := s.sellOne(product.ID, "40")

	_, err := s.products.UpdateProduct(s.ctx, orgSlug, product.ID, dto.UpdateProductRequest{
		Description:   "Grinder Pro",
		PurchasePrice: dec("30"),
		SellingPrice:  dec("55"),
		StockQuantity: 4,
	})
	s.Require().NoError(err)

	fetched, err := s.invoices.FindByID(s.ctx, orgSlug, created.ID)
	s.Require().NoError(err)
	s.assertDecimal(created.Subtotal.String(), fetched.Subtotal)
	s.assertDecimal(created.Total.String(), fetched.Total)
	s.Require().Len(fetched.Items, 1)
	s.Equal("Grinder", fetched.Items[0].Description)
	s.assertDecimal("40", fetched.Items[0].SellingPrice)
	s.assertDecimal("50", fetched.Items[0].PurchasePrice)
	s.Equal("owner", fetched.Cashier.Username)
}

func (s *ServiceTestSuite) TestCreateSale_InsufficientStockRollsBack() {
	cups := s.createProduct("Cups", nil, "2", 5)
	beans := s.createProduct("Beans", nil, "10", 20)

	_, err := s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: cups.ID, Price: dec("2"), Quantity: 2},
			{ProductID: beans.ID, Price: dec("10"), Quantity: 25},
		},
		Paid: dec("0"),
	}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeInsufficientStock)
	s.Contains(err.Error(), "Beans")

	s.Equal(int64(5), s.stockOf(cups.ID))
	s.Equal(int64(20), s.stockOf(beans.ID))
	s.True(s.balance().IsZero())

	page, err := s.invoices.GetAllInvoices(s.ctx, orgSlug, dto.ListInvoicesParams{})
	s.Require().NoError(err)
	s.Zero(page.TotalCount)

	rec, err := s.orgs.ReconcileBalance(s.ctx, orgSlug)
	s.Require().NoError(err)
	s.True(rec.LedgerTotal.IsZero())
}

func (s *ServiceTestSuite) TestCreateSale_SequentialSalesAccumulateBalance() {
	product := s.createProduct("Kettle", nil, "100", 10)

	s.sellOne(product.ID, "100")
	s.sellOne(product.ID, "100")

	s.assertDecimal("200", s.balance())
	s.Equal(int64(8), s.stockOf(product.ID))
	s.assertLedgerConsistent()
}

func (s *ServiceTestSuite) TestCreateSale_PaidOutOfRange() {
	product := s.createProduct("Filter", nil, "100", 10)
	items := []dto.SaleItemRequest{{ProductID: product.ID, Price: dec("100"), Quantity: 1}}

	_, err := s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{Items: items, Paid: dec("-1")}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodePaidNegative)

	_, err = s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{Items: items, Paid: dec("100.01")}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodePaidExceedsTotal)

	s.Equal(int64(10), s.stockOf(product.ID))
	s.True(s.balance().IsZero())
}

func (s *ServiceTestSuite) TestCreateSale_PaidEqualToTotalLeavesNothingRemaining() {
	product := s.createProduct("Mug", nil, "12.5", 10)

	inv := s.sellOne(product.ID, "12.5")

	s.True(inv.Remaining.IsZero())
	s.assertDecimal("12.5", s.balance())
}

func (s *ServiceTestSuite) TestCreateSale_EmptyItems() {
	_, err := s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{Paid: decimal.Zero}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeInvoiceItemsEmpty)

	_, err = s.invoices.CreatePurchase(s.ctx, orgSlug, dto.CreatePurchaseInvoiceRequest{Items: []dto.PurchaseItemRequest{}}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeInvoiceItemsEmpty)
}

func (s *ServiceTestSuite) TestCreateSale_UnknownReferences() {
	product := s.createProduct("Tamper", nil, "15", 3)

	_, err := s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{
		Items: []dto.SaleItemRequest{{ProductID: uuid.NewString(), Price: dec("1"), Quantity: 1}},
	}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeProductNotFound)

	missingCustomer := uuid.NewString()
	_, err = s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{
		CustomerID: &missingCustomer,
		Items:      []dto.SaleItemRequest{{ProductID: product.ID, Price: dec("15"), Quantity: 1}},
	}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeCustomerNotFound)

	_, err = s.invoices.CreateSale(s.ctx, "no-such-org", dto.CreateSaleInvoiceRequest{
		Items: []dto.SaleItemRequest{{ProductID: product.ID, Price: dec("15"), Quantity: 1}},
	}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeOrganizationNotFound)

	s.Equal(int64(3), s.stockOf(product.ID))
}

func (s *ServiceTestSuite) TestCreateSale_InvalidLineRejected() {
	product := s.createProduct("Scale", nil, "30", 3)

	_, err := s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{
		Items: []dto.SaleItemRequest{{ProductID: product.ID, Price: dec("30"), Quantity: 0}},
	}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeValidationFailed)
}

func (s *ServiceTestSuite) TestCreatePurchase_NewProductNeedsDescription() {
	_, err := s.invoices.CreatePurchase(s.ctx, orgSlug, dto.CreatePurchaseInvoiceRequest{
		Items: []dto.PurchaseItemRequest{{
			Barcode:       strPtr("123"),
			PurchasePrice: dec("10"),
			SellingPrice:  dec("15"),
			Quantity:      3,
		}},
	}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeProductDescriptionNeeded)
}

func (s *ServiceTestSuite) TestCreatePurchase_CreatesAndRestocks() {
	existing := s.createProduct("Milk jug", nil, "20", 20)
	supplier := s.createCustomer("Bean Supplier")

	inv, err := s.invoices.CreatePurchase(s.ctx, orgSlug, dto.CreatePurchaseInvoiceRequest{
		CustomerID: &supplier.ID,
		Items: []dto.PurchaseItemRequest{
			{
				Barcode:       strPtr(" 5901234123457 "),
				Description:   strPtr("House blend 1kg"),
				PurchasePrice: dec("40"),
				SellingPrice:  dec("60"),
				Quantity:      10,
			},
			{
				ProductID:     &existing.ID,
				PurchasePrice: dec("80"),
				SellingPrice:  dec("120"),
				Quantity:      5,
			},
		},
		Paid: dec("700"),
	}, s.admin.ID)
	s.Require().NoError(err)

	s.Equal(domain.InvoiceTypePurchase, inv.Type)
	s.assertDecimal("800", inv.Total)
	s.assertDecimal("100", inv.Remaining)
	s.Require().NotNil(inv.Customer)
	s.Equal(supplier.ID, inv.Customer.ID)
	s.Require().Len(inv.Items, 2)

	created, err := s.store.Repositories().ProductRepo.FindProductByID(s.ctx, s.org.ID, *inv.Items[0].ProductID)
	s.Require().NoError(err)
	s.Equal("5901234123457", *created.Barcode)
	s.Equal(int64(10), created.StockQuantity)

	restocked, err := s.store.Repositories().ProductRepo.FindProductByID(s.ctx, s.org.ID, existing.ID)
	s.Require().NoError(err)
	s.Equal(int64(25), restocked.StockQuantity)
	s.assertDecimal("80", restocked.PurchasePrice)
	s.assertDecimal("120", restocked.SellingPrice)

	s.assertDecimal("-700", s.balance())
	s.assertLedgerConsistent()
}

func (s *ServiceTestSuite) TestCreatePurchase_BarcodeConflictRollsBack() {
	existing := s.createProduct("Oat milk", strPtr("111"), "3", 4)

	_, err := s.invoices.CreatePurchase(s.ctx, orgSlug, dto.CreatePurchaseInvoiceRequest{
		Items: []dto.PurchaseItemRequest{
			{ProductID: &existing.ID, PurchasePrice: dec("1"), SellingPrice: dec("3"), Quantity: 6},
			{Barcode: strPtr("111"), Description: strPtr("Soy milk"), PurchasePrice: dec("1"), SellingPrice: dec("3"), Quantity: 6},
		},
		Paid: dec("12"),
	}, s.admin.ID)
	s.assertAppError(err, apperrors.ErrConflict, apperrors.CodeProductBarcodeTaken)

	s.Equal(int64(4), s.stockOf(existing.ID))
	s.True(s.balance().IsZero())
}

func (s *ServiceTestSuite) TestGetAllInvoices_PaginatesAndFilters() {
	product := s.createProduct("Beans", nil, "10", 100)
	for i := 0; i < 3; i++ {
		s.sellOne(product.ID, "10")
	}
	for i := 0; i < 2; i++ {
		_, err := s.invoices.CreatePurchase(s.ctx, orgSlug, dto.CreatePurchaseInvoiceRequest{
			Items: []dto.PurchaseItemRequest{{ProductID: &product.ID, PurchasePrice: dec("5"), SellingPrice: dec("10"), Quantity: 1}},
		}, s.admin.ID)
		s.Require().NoError(err)
	}

	page, err := s.invoices.GetAllInvoices(s.ctx, orgSlug, dto.ListInvoicesParams{Page: 1, PageSize: 2})
	s.Require().NoError(err)
	s.Len(page.Data, 2)
	s.Equal(int64(5), page.TotalCount)

	last, err := s.invoices.GetAllInvoices(s.ctx, orgSlug, dto.ListInvoicesParams{Page: 3, PageSize: 2})
	s.Require().NoError(err)
	s.Len(last.Data, 1)

	purchases, err := s.invoices.GetAllInvoices(s.ctx, orgSlug, dto.ListInvoicesParams{Type: "PURCHASE"})
	s.Require().NoError(err)
	s.Equal(int64(2), purchases.TotalCount)
	for _, inv := range purchases.Data {
		s.Equal(domain.InvoiceTypePurchase, inv.Type)
	}

	_, err = s.invoices.GetAllInvoices(s.ctx, orgSlug, dto.ListInvoicesParams{Type: "REFUND"})
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeValidationFailed)
}

func (s *ServiceTestSuite) TestGetAllInvoices_PageBounds() {
	product := s.createProduct("Beans", nil, "10", 10)
	s.sellOne(product.ID, "10")

	beyond, err := s.invoices.GetAllInvoices(s.ctx, orgSlug, dto.ListInvoicesParams{Page: 1000, PageSize: 100})
	s.Require().NoError(err)
	s.Empty(beyond.Data)
	s.Equal(int64(1), beyond.TotalCount)

	_, err = s.invoices.GetAllInvoices(s.ctx, orgSlug, dto.ListInvoicesParams{Page: math.MaxInt64/100 + 2, PageSize: 100})
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeValidationFailed)

	_, err = s.invoices.GetAllInvoices(s.ctx, orgSlug, dto.ListInvoicesParams{Page: 1, PageSize: 1000})
	s.assertAppError(err, apperrors.ErrBadRequest, apperrors.CodeValidationFailed)
}

func (s *ServiceTestSuite) TestGetAllInvoices_NewestFirst() {
	product := s.createProduct("Beans", nil, "10", 10)
	first := s.sellOne(product.ID, "10")
	s.now = s.now.Add(time.Minute)
	second := s.sellOne(product.ID, "10")

	page, err := s.invoices.GetAllInvoices(s.ctx, orgSlug, dto.ListInvoicesParams{})
	s.Require().NoError(err)
	s.Require().Len(page.Data, 2)
	s.Equal(second.ID, page.Data[0].ID)
	s.Equal(first.ID, page.Data[1].ID)
}

func (s *ServiceTestSuite) TestFindByID_NotFound() {
	_, err := s.invoices.FindByID(s.ctx, orgSlug, uuid.NewString())
	s.assertAppError(err, apperrors.ErrNotFound, apperrors.CodeInvoiceNotFound)
}

func (s *ServiceTestSuite) TestCreateSale_ConcurrentSalesStopAtStock() {
	const (
		stock    = 5
		cashiers = 20
	)
	product := s.createProduct("Espresso", nil, "10", stock)

	var (
		wg         sync.WaitGroup
		succeeded  atomic.Int32
		rejected   atomic.Int32
		unexpected = make(chan error, cashiers)
	)
	for i := 0; i < cashiers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.invoices.CreateSale(s.ctx, orgSlug, dto.CreateSaleInvoiceRequest{
				Items: []dto.SaleItemRequest{{ProductID: product.ID, Price: dec("10"), Quantity: 1}},
				Paid:  dec("10"),
			}, s.admin.ID)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, apperrors.ErrBadRequest) && apperrors.CodeOf(err) == apperrors.CodeInsufficientStock:
				rejected.Add(1)
			default:
				unexpected <- err
			}
		}()
	}
	wg.Wait()
	close(unexpected)

	for err := range unexpected {
		s.Fail("unexpected sale error", err.Error())
	}
	s.Equal(int32(stock), succeeded.Load())
	s.Equal(int32(cashiers-stock), rejected.Load())
	s.Equal(int64(0), s.stockOf(product.ID))
	s.assertDecimal("50", s.balance())

	page, err := s.invoices.GetAllInvoices(s.ctx, orgSlug, dto.ListInvoicesParams{})
	s.Require().NoError(err)
	s.Equal(int64(stock), page.TotalCount)
	s.assertLedgerConsistent()
}

func (s *ServiceTestSuite) TestAddBalance_ConcurrentAdditionsAreNotLost() {
	const additions = 25

	var wg sync.WaitGroup
	errs := make(chan error, additions)
	for i := 0; i < additions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.orgs.AddBalance(s.ctx, orgSlug, dec("1.5"), s.admin.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Fail("unexpected balance error", err.Error())
	}
	s.assertDecimal("37.5", s.balance())
	s.assertLedgerConsistent()
}
