package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cyphera/cyphera-tax/libs/go/constants"
	"github.com/cyphera/cyphera-tax/libs/go/db"
	"github.com/cyphera/cyphera-tax/libs/go/helpers"
	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/params"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

var (
	// ErrTaxpayerNotFound is returned when no record exists for a taxpayer id
	ErrTaxpayerNotFound = errors.New("taxpayer not found")
	// ErrTaxpayerExists is returned when creating a record for an id already stored
	ErrTaxpayerExists = errors.New("taxpayer already exists")
	// ErrForbidden is returned when the caller is not allowed to perform an operation
	ErrForbidden = errors.New("forbidden")
)

var ssnPattern = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)

// fieldUpdater applies one whitelisted field change through its own fixed statement
type fieldUpdater func(ctx context.Context, taxpayerID, value string) (db.Taxpayer, error)

// TaxpayerService stores taxpayer records and calculates tax for them
type TaxpayerService struct {
	queries    db.Querier
	cipher     FieldEncryptor
	calculator *TaxCalculator
	log        *logger.StructuredLogger
	updaters   map[string]fieldUpdater
}

// NewTaxpayerService creates a new taxpayer service
func NewTaxpayerService(queries db.Querier, cipher FieldEncryptor, tables business.TaxTables) *TaxpayerService {
	s := &TaxpayerService{
		queries:    queries,
		cipher:     cipher,
		calculator: NewTaxCalculator(tables),
		log:        logger.NewStructuredLogger(logger.ComponentTaxpayer),
	}
	s.updaters = map[string]fieldUpdater{
		constants.TaxpayerFieldName:               s.updateName,
		constants.TaxpayerFieldFilingStatus:       s.updateFilingStatus,
		constants.TaxpayerFieldGrossIncome:        s.updateGrossIncome,
		constants.TaxpayerFieldItemizedDeductions: s.updateItemizedDeductions,
		constants.TaxpayerFieldStateCode:          s.updateStateCode,
	}
	return s
}

// UpdatableFields lists the field names accepted by UpdateTaxpayerField, sorted
func (s *TaxpayerService) UpdatableFields() []string {
	fields := make([]string, 0, len(s.updaters))
	for field := range s.updaters {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// CreateTaxpayer validates and stores a new taxpayer. The SSN is encrypted before it
// leaves the process; an encryption failure aborts the insert.
func (s *TaxpayerService) CreateTaxpayer(ctx context.Context, params params.CreateTaxpayerParams) (*business.TaxpayerRecord, error) {
	params.FilingStatus = business.FilingStatus(strings.ToUpper(strings.TrimSpace(params.FilingStatus.Code())))
	if err := validateCreateTaxpayer(params); err != nil {
		return nil, err
	}

	encryptedSSN, err := s.cipher.Encrypt(params.SSN, params.TaxpayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt ssn: %w", err)
	}

	log := s.log.WithTaxpayer(params.TaxpayerID)
	start := time.Now()
	row, err := s.queries.CreateTaxpayer(ctx, db.CreateTaxpayerParams{
		TaxpayerID:         params.TaxpayerID,
		SsnEncrypted:       encryptedSSN,
		Name:               params.Name,
		FilingStatus:       params.FilingStatus.Code(),
		GrossIncome:        helpers.DecimalToNumeric(params.GrossIncome),
		ItemizedDeductions: helpers.DecimalToNumeric(params.ItemizedDeductions),
		StateCode:          strings.ToUpper(params.StateCode),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrTaxpayerExists
		}
		log.Error("Failed to create taxpayer", err)
		return nil, fmt.Errorf("failed to create taxpayer: %w", err)
	}
	log.LogDatabaseQuery("CreateTaxpayer", time.Since(start), 1)

	log.Info("Created taxpayer")
	return s.toRecord(row)
}

// GetTaxpayer looks up a taxpayer by id
func (s *TaxpayerService) GetTaxpayer(ctx context.Context, taxpayerID string) (*business.TaxpayerRecord, error) {
	if strings.TrimSpace(taxpayerID) == "" {
		return nil, business.NewValidationError("taxpayer_id", "Taxpayer ID cannot be null or empty")
	}

	row, err := s.queries.GetTaxpayer(ctx, taxpayerID)
	if err != nil {
		return nil, s.storeError("get", taxpayerID, err)
	}
	return s.toRecord(row)
}

// UpdateTaxpayerField changes one whitelisted field. The field name selects a fixed
// statement and is never part of the SQL text.
func (s *TaxpayerService) UpdateTaxpayerField(ctx context.Context, params params.UpdateTaxpayerFieldParams) (*business.TaxpayerRecord, error) {
	if strings.TrimSpace(params.TaxpayerID) == "" {
		return nil, business.NewValidationError("taxpayer_id", "Taxpayer ID cannot be null or empty")
	}

	update, ok := s.updaters[params.Field]
	if !ok {
		return nil, business.NewValidationError("field", fmt.Sprintf("Unsupported field: %s (accepted: %s)",
			params.Field, strings.Join(s.UpdatableFields(), ", ")))
	}

	row, err := update(ctx, params.TaxpayerID, params.Value)
	if err != nil {
		if business.IsInvalidArgument(err) {
			return nil, err
		}
		return nil, s.storeError("update", params.TaxpayerID, err)
	}

	s.log.WithTaxpayer(params.TaxpayerID).WithField("field", params.Field).Info("Updated taxpayer")
	return s.toRecord(row)
}

// UpdateTaxpayerIncome sets a taxpayer's gross income
func (s *TaxpayerService) UpdateTaxpayerIncome(ctx context.Context, taxpayerID string, income decimal.Decimal) (*business.TaxpayerRecord, error) {
	return s.UpdateTaxpayerField(ctx, params.UpdateTaxpayerFieldParams{
		TaxpayerID: taxpayerID,
		Field:      constants.TaxpayerFieldGrossIncome,
		Value:      income.String(),
	})
}

// CalculateForTaxpayer calculates tax from a stored record. Overrides replace the
// stored itemized deductions or state code for this calculation only.
func (s *TaxpayerService) CalculateForTaxpayer(ctx context.Context, params params.TaxpayerCalculationParams) (*responses.TaxCalculationResult, error) {
	record, err := s.GetTaxpayer(ctx, params.TaxpayerID)
	if err != nil {
		return nil, err
	}

	input := taxInputFromRecord(record)
	if params.ItemizedDeductions != nil {
		input.ItemizedDeductions = decimal.NewNullDecimal(*params.ItemizedDeductions)
	}
	if params.StateCode != nil {
		input.StateCode = *params.StateCode
	}

	result, err := s.calculator.Calculate(input)
	if err != nil {
		return nil, err
	}

	s.log.WithTaxpayer(record.TaxpayerID).
		WithField("state_code", strings.ToUpper(input.StateCode)).
		Info("Calculated tax for stored taxpayer")
	return &result, nil
}

// PurgeTaxpayers deletes every taxpayer record. Only an admin principal may do this.
func (s *TaxpayerService) PurgeTaxpayers(ctx context.Context, principal *business.Principal) (int64, error) {
	if principal == nil || principal.Role != constants.AdminRole {
		subject := ""
		if principal != nil {
			subject = principal.Subject
		}
		s.log.WithField("subject", subject).Warn("Rejected taxpayer purge")
		return 0, ErrForbidden
	}

	log := s.log.WithField("subject", principal.Subject)
	var deleted int64
	err := log.LogOperation("purge_taxpayers", func() error {
		start := time.Now()
		n, err := s.queries.DeleteAllTaxpayers(ctx)
		if err != nil {
			return fmt.Errorf("failed to purge taxpayers: %w", err)
		}
		log.LogDatabaseQuery("DeleteAllTaxpayers", time.Since(start), n)
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.WithField("deleted", deleted).Warn("Purged taxpayer records")
	return deleted, nil
}

func (s *TaxpayerService) updateName(ctx context.Context, taxpayerID, value string) (db.Taxpayer, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return db.Taxpayer{}, business.NewValidationError("name", "Name cannot be empty")
	}
	return s.queries.UpdateTaxpayerName(ctx, db.UpdateTaxpayerNameParams{TaxpayerID: taxpayerID, Name: name})
}

func (s *TaxpayerService) updateFilingStatus(ctx context.Context, taxpayerID, value string) (db.Taxpayer, error) {
	status, err := business.ParseFilingStatus(strings.ToUpper(strings.TrimSpace(value)))
	if err != nil {
		return db.Taxpayer{}, err
	}
	return s.queries.UpdateTaxpayerFilingStatus(ctx, db.UpdateTaxpayerFilingStatusParams{
		TaxpayerID:   taxpayerID,
		FilingStatus: status.Code(),
	})
}

func (s *TaxpayerService) updateGrossIncome(ctx context.Context, taxpayerID, value string) (db.Taxpayer, error) {
	amount, err := parseAmount(constants.TaxpayerFieldGrossIncome, value, "Gross income cannot be null or negative")
	if err != nil {
		return db.Taxpayer{}, err
	}
	return s.queries.UpdateTaxpayerIncome(ctx, db.UpdateTaxpayerIncomeParams{
		TaxpayerID:  taxpayerID,
		GrossIncome: helpers.DecimalToNumeric(amount),
	})
}

func (s *TaxpayerService) updateItemizedDeductions(ctx context.Context, taxpayerID, value string) (db.Taxpayer, error) {
	amount, err := parseAmount(constants.TaxpayerFieldItemizedDeductions, value, "Itemized deductions cannot be null or negative")
	if err != nil {
		return db.Taxpayer{}, err
	}
	return s.queries.UpdateTaxpayerItemizedDeductions(ctx, db.UpdateTaxpayerItemizedDeductionsParams{
		TaxpayerID:         taxpayerID,
		ItemizedDeductions: helpers.DecimalToNumeric(amount),
	})
}

func (s *TaxpayerService) updateStateCode(ctx context.Context, taxpayerID, value string) (db.Taxpayer, error) {
	code := strings.ToUpper(value)
	if utf8.RuneCountInString(code) != 2 {
		return db.Taxpayer{}, business.NewValidationError("state_code", "State code must be exactly 2 characters")
	}
	return s.queries.UpdateTaxpayerStateCode(ctx, db.UpdateTaxpayerStateCodeParams{TaxpayerID: taxpayerID, StateCode: code})
}

func (s *TaxpayerService) storeError(operation, taxpayerID string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrTaxpayerNotFound
	}
	s.log.WithTaxpayer(taxpayerID).WithOperation(operation).Error("Taxpayer store failure", err)
	return fmt.Errorf("failed to %s taxpayer: %w", operation, err)
}

func (s *TaxpayerService) toRecord(row db.Taxpayer) (*business.TaxpayerRecord, error) {
	ssn, err := s.cipher.Decrypt(row.SsnEncrypted, row.TaxpayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt ssn: %w", err)
	}
	gross, err := helpers.NumericToDecimal(row.GrossIncome)
	if err != nil {
		return nil, fmt.Errorf("invalid gross income column: %w", err)
	}
	itemized, err := helpers.NumericToDecimal(row.ItemizedDeductions)
	if err != nil {
		return nil, fmt.Errorf("invalid itemized deductions column: %w", err)
	}

	return &business.TaxpayerRecord{
		TaxpayerID:         row.TaxpayerID,
		SSN:                ssn,
		Name:               row.Name,
		FilingStatus:       business.FilingStatus(row.FilingStatus),
		GrossIncome:        gross,
		ItemizedDeductions: itemized,
		StateCode:          row.StateCode,
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}, nil
}

func taxInputFromRecord(record *business.TaxpayerRecord) params.TaxCalculationParams {
	return params.TaxCalculationParams{
		TaxpayerID:         record.TaxpayerID,
		FilingStatus:       record.FilingStatus,
		GrossIncome:        decimal.NewNullDecimal(record.GrossIncome),
		ItemizedDeductions: decimal.NewNullDecimal(record.ItemizedDeductions),
		StateCode:          record.StateCode,
	}
}

func validateCreateTaxpayer(params params.CreateTaxpayerParams) error {
	if strings.TrimSpace(params.TaxpayerID) == "" {
		return business.NewValidationError("taxpayer_id", "Taxpayer ID cannot be null or empty")
	}
	if !ssnPattern.MatchString(params.SSN) {
		return business.NewValidationError("ssn", "SSN must be 9 digits, optionally formatted as XXX-XX-XXXX")
	}
	if strings.TrimSpace(params.Name) == "" {
		return business.NewValidationError("name", "Name cannot be empty")
	}
	if !params.FilingStatus.IsValid() {
		_, err := business.ParseFilingStatus(params.FilingStatus.Code())
		return err
	}
	if params.GrossIncome.IsNegative() {
		return business.NewValidationError("gross_income", "Gross income cannot be null or negative")
	}
	if params.ItemizedDeductions.IsNegative() {
		return business.NewValidationError("itemized_deductions", "Itemized deductions cannot be null or negative")
	}
	if params.GrossIncome.GreaterThan(business.MaxAmount) {
		return business.NewValidationError("gross_income", business.InvalidAmountMessage)
	}
	if params.ItemizedDeductions.GreaterThan(business.MaxAmount) {
		return business.NewValidationError("itemized_deductions", business.InvalidAmountMessage)
	}
	if utf8.RuneCountInString(params.StateCode) != 2 {
		return business.NewValidationError("state_code", "State code must be exactly 2 characters")
	}
	return nil
}

func parseAmount(field, value, message string) (decimal.Decimal, error) {
	amount, err := business.ParseAmount(value)
	if err != nil {
		return decimal.Zero, business.NewValidationError(field, business.InvalidAmountMessage)
	}
	if amount.IsNegative() {
		return decimal.Zero, business.NewValidationError(field, message)
	}
	return amount, nil
}
