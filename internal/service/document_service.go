package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nurpe/hr-contracts/internal/chain"
	"github.com/nurpe/hr-contracts/internal/metrics"
	"github.com/nurpe/hr-contracts/internal/model"
)

type ExcelGenerator interface {
	Generate(report model.ContractReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(doc model.ContractDocument) ([]byte, error)
}

type DocumentService struct {
	contracts ContractStore
	excel     ExcelGenerator
	pdf       PDFGenerator
	metrics   *metrics.Metrics
	now       func() time.Time

	exportChain *chain.Chain[chain.ExportRequest]
	readChain   *chain.Chain[chain.DecisionRequest]
}

type FileResult struct {
	FileName string
	Content  []byte
}

var reportStates = []model.ContractState{
	model.ContractStateDraft,
	model.ContractStateAccepted,
	model.ContractStateTerminated,
}

func NewDocumentService(
	contracts ContractStore,
	excel ExcelGenerator,
	pdf PDFGenerator,
	verifier chain.TokenVerifier,
	m *metrics.Metrics,
) *DocumentService {
	return &DocumentService{
		contracts: contracts,
		excel:     excel,
		pdf:       pdf,
		metrics:   m,
		now:       time.Now,
		exportChain: chain.New(
			chain.Authenticated[chain.ExportRequest](verifier),
			chain.HR[chain.ExportRequest](),
		),
		readChain: chain.New(
			chain.Authenticated[chain.DecisionRequest](verifier),
		),
	}
}

// ExportContracts renders every contract matching the filter into a
// workbook with one sheet per state.
func (s *DocumentService) ExportContracts(ctx context.Context, req chain.ExportRequest) (res *FileResult, err error) {
	defer func() { s.metrics.ObserveOperation("export", err) }()

	if err := s.exportChain.Handle(ctx, req); err != nil {
		s.metrics.ObserveRejection("export", err)
		return nil, err
	}

	filter := req.Filter
	if filter.State != "" && !filter.State.Valid() {
		return nil, fmt.Errorf("%w: unknown contract state %q", ErrInvalidInput, filter.State)
	}
	filter.StartFrom = model.DateOnly(filter.StartFrom)
	filter.StartTo = model.DateOnly(filter.StartTo)
	if !filter.StartFrom.IsZero() && !filter.StartTo.IsZero() && filter.StartFrom.After(filter.StartTo) {
		return nil, fmt.Errorf("%w: start_from must be before or equal to start_to", ErrInvalidInput)
	}

	contracts, err := s.contracts.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	counts, err := s.contracts.CountByState(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count contracts: %w", err)
	}

	report := model.ContractReport{
		GeneratedAt: s.now().UTC(),
		Filter:      filter,
		Groups:      groupByState(filter.State, contracts, counts),
	}
	for _, group := range report.Groups {
		report.Total += group.Count
	}

	content, err := s.excel.Generate(report)
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: s.buildExportFileName(report), Content: content}, nil
}

// ContractDocument renders one contract as PDF for HR or its candidate.
func (s *DocumentService) ContractDocument(ctx context.Context, req chain.DecisionRequest) (res *FileResult, err error) {
	defer func() { s.metrics.ObserveOperation("document", err) }()

	if err := s.readChain.Handle(ctx, req); err != nil {
		s.metrics.ObserveRejection("document", err)
		return nil, err
	}

	contract, err := s.contracts.FindByID(ctx, req.ContractID)
	if err != nil {
		if isNotFound(err) {
			return nil, model.Fail(ErrNotFound, "contract does not exist")
		}
		return nil, fmt.Errorf("load contract: %w", err)
	}
	if !canRead(req.Principal, contract) {
		return nil, model.Fail(ErrNotAuthorized, "you are not allowed to view this contract")
	}

	days, bounded := contract.Duration()
	doc := model.ContractDocument{
		Contract:     *contract,
		GeneratedAt:  s.now().UTC(),
		DurationDays: days,
		OpenEnded:    !bounded,
	}

	content, err := s.pdf.Generate(doc)
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: buildDocumentFileName(*contract), Content: content}, nil
}

func groupByState(only model.ContractState, contracts []model.Contract, counts map[model.ContractState]int64) []model.StateGroup {
	groups := make([]model.StateGroup, 0, len(reportStates))
	index := make(map[model.ContractState]int, len(reportStates))
	for _, state := range reportStates {
		if only != "" && state != only {
			continue
		}
		groups = append(groups, model.StateGroup{State: state, Count: counts[state]})
		index[state] = len(groups) - 1
	}
	for _, c := range contracts {
		pos, ok := index[c.State]
		if !ok {
			continue
		}
		groups[pos].Contracts = append(groups[pos].Contracts, c)
	}
	return groups
}

func (s *DocumentService) buildExportFileName(report model.ContractReport) string {
	state := "all"
	if report.Filter.State != "" {
		state = strings.ToLower(string(report.Filter.State))
	}
	period := report.GeneratedAt.Format("20060102")
	if !report.Filter.StartFrom.IsZero() || !report.Filter.StartTo.IsZero() {
		period = fmt.Sprintf("%s-%s", formatFileDate(report.Filter.StartFrom), formatFileDate(report.Filter.StartTo))
	}
	return fmt.Sprintf("contracts-%s-%s.xlsx", state, period)
}

func buildDocumentFileName(c model.Contract) string {
	candidate := sanitizeFileName(c.CandidateNetID)
	if candidate == "" {
		candidate = "candidate"
	}
	return fmt.Sprintf("contract-%s-%s.pdf", candidate, strings.Split(c.ID.String(), "-")[0])
}

func formatFileDate(t time.Time) string {
	if t.IsZero() {
		return "open"
	}
	return t.Format("20060102")
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
