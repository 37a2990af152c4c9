package handler

import (
	"context"
	"time"

	rosterpb "github.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/roster/v1"
	"github.com/ogurasousui/kintai-points/internal/core/policy"
	"github.com/ogurasousui/kintai-points/internal/core/roster"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const dateLayout = "2006-01-02"

// RosterGrpcHandler は RosterService の gRPC 実装です。
type RosterGrpcHandler struct {
	svc roster.UseCase
	rosterpb.UnimplementedRosterServiceServer
}

// NewRosterGrpcHandler は RosterGrpcHandler を生成します。
func NewRosterGrpcHandler(svc roster.UseCase) *RosterGrpcHandler {
	return &RosterGrpcHandler{svc: svc}
}

// AddEmployee は従業員を追加します。
func (h *RosterGrpcHandler) AddEmployee(ctx context.Context, req *rosterpb.AddEmployeeRequest) (*rosterpb.AddEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.AddEmployee(ctx, roster.AddEmployeeInput{
		Name:   req.GetName(),
		Number: req.GetEmployeeNumber(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rosterpb.AddEmployeeResponse{Employee: toProtoEmployee(created)}, nil
}

// RenameEmployee は従業員の表示名を変更します。
func (h *RosterGrpcHandler) RenameEmployee(ctx context.Context, req *rosterpb.RenameEmployeeRequest) (*rosterpb.RenameEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.RenameEmployee(ctx, roster.RenameEmployeeInput{
		ID:   req.GetId(),
		Name: req.GetName(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rosterpb.RenameEmployeeResponse{Employee: toProtoEmployee(updated)}, nil
}

// SetEmployeeNumber は従業員番号を設定または消去します。
func (h *RosterGrpcHandler) SetEmployeeNumber(ctx context.Context, req *rosterpb.SetEmployeeNumberRequest) (*rosterpb.SetEmployeeNumberResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.SetEmployeeNumber(ctx, roster.SetEmployeeNumberInput{
		ID:  req.GetId(),
		Raw: req.GetRaw(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rosterpb.SetEmployeeNumberResponse{Employee: toProtoEmployee(updated)}, nil
}

// DeleteEmployee は従業員と所有する全違反を削除します。
func (h *RosterGrpcHandler) DeleteEmployee(ctx context.Context, req *rosterpb.DeleteEmployeeRequest) (*rosterpb.DeleteEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteEmployee(ctx, roster.DeleteEmployeeInput{ID: req.GetId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &rosterpb.DeleteEmployeeResponse{}, nil
}

// AddInfraction は違反を記録します。
func (h *RosterGrpcHandler) AddInfraction(ctx context.Context, req *rosterpb.AddInfractionRequest) (*rosterpb.AddInfractionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	category, err := toDomainCategory(req.GetCategory())
	if err != nil {
		return nil, toStatusError(err)
	}

	var date time.Time
	if req.GetDate() != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.GetDate(), time.UTC)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "date must be %s", dateLayout)
		}
		date = parsed
	}

	updated, err := h.svc.AddInfraction(ctx, roster.AddInfractionInput{
		EmployeeID: req.GetEmployeeId(),
		Category:   category,
		Date:       date,
		Store:      req.GetStore(),
		Reason:     req.GetReason(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rosterpb.AddInfractionResponse{Employee: toProtoEmployee(updated)}, nil
}

// DeleteInfraction は違反を削除します。
func (h *RosterGrpcHandler) DeleteInfraction(ctx context.Context, req *rosterpb.DeleteInfractionRequest) (*rosterpb.DeleteInfractionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.DeleteInfraction(ctx, roster.DeleteInfractionInput{
		EmployeeID:   req.GetEmployeeId(),
		InfractionID: req.GetInfractionId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rosterpb.DeleteInfractionResponse{Employee: toProtoEmployee(updated)}, nil
}

// GetEmployee は従業員を取得します。
func (h *RosterGrpcHandler) GetEmployee(ctx context.Context, req *rosterpb.GetEmployeeRequest) (*rosterpb.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployee(ctx, roster.GetEmployeeInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rosterpb.GetEmployeeResponse{Employee: toProtoEmployee(found)}, nil
}

// ListEmployees は従業員の一覧を新しい順で返します。
func (h *RosterGrpcHandler) ListEmployees(ctx context.Context, req *rosterpb.ListEmployeesRequest) (*rosterpb.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	employees, err := h.svc.ListEmployees(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*rosterpb.Employee, 0, len(employees))
	for _, emp := range employees {
		out = append(out, toProtoEmployee(emp))
	}

	return &rosterpb.ListEmployeesResponse{Employees: out}, nil
}

func toProtoEmployee(emp *roster.Employee) *rosterpb.Employee {
	if emp == nil {
		return nil
	}

	infractions := make([]*rosterpb.Infraction, 0, len(emp.Infractions))
	for _, inf := range emp.Infractions {
		infractions = append(infractions, &rosterpb.Infraction{
			Id:       inf.ID,
			Category: toProtoCategory(inf.Category),
			Label:    policy.Label(inf.Category),
			Points:   int32(inf.Points),
			Date:     inf.Date.Format(dateLayout),
			Store:    inf.Store,
			Reason:   inf.Reason,
		})
	}

	standing := emp.Standing()
	return &rosterpb.Employee{
		Id:             emp.ID,
		EmployeeNumber: emp.Number,
		Name:           emp.Name,
		Infractions:    infractions,
		TotalPoints:    int32(emp.TotalPoints()),
		Standing:       toProtoStanding(standing),
		StandingLabel:  policy.StatusLabel(standing),
		Tone:           string(policy.ToneFor(standing)),
	}
}

func toDomainCategory(c rosterpb.InfractionCategory) (policy.Category, error) {
	switch c {
	case rosterpb.InfractionCategory_INFRACTION_CATEGORY_CALL_OUT_PRIOR:
		return policy.CategoryCallOutPrior, nil
	case rosterpb.InfractionCategory_INFRACTION_CATEGORY_CALL_OUT_AFTER_START:
		return policy.CategoryCallOutAfterStart, nil
	case rosterpb.InfractionCategory_INFRACTION_CATEGORY_NO_CALL_NO_SHOW:
		return policy.CategoryNoCallNoShow, nil
	case rosterpb.InfractionCategory_INFRACTION_CATEGORY_TARDY_SHORT:
		return policy.CategoryTardyShort, nil
	case rosterpb.InfractionCategory_INFRACTION_CATEGORY_TARDY_LONG:
		return policy.CategoryTardyLong, nil
	case rosterpb.InfractionCategory_INFRACTION_CATEGORY_EARLY_DEPARTURE_SHORT:
		return policy.CategoryEarlyDepartShort, nil
	case rosterpb.InfractionCategory_INFRACTION_CATEGORY_EARLY_DEPARTURE_LONG:
		return policy.CategoryEarlyDepartLong, nil
	case rosterpb.InfractionCategory_INFRACTION_CATEGORY_LATE_RETURN_SHORT:
		return policy.CategoryLateReturnShort, nil
	case rosterpb.InfractionCategory_INFRACTION_CATEGORY_LATE_RETURN_LONG:
		return policy.CategoryLateReturnLong, nil
	default:
		return "", roster.ErrInvalidCategory
	}
}

func toProtoCategory(c policy.Category) rosterpb.InfractionCategory {
	switch c {
	case policy.CategoryCallOutPrior:
		return rosterpb.InfractionCategory_INFRACTION_CATEGORY_CALL_OUT_PRIOR
	case policy.CategoryCallOutAfterStart:
		return rosterpb.InfractionCategory_INFRACTION_CATEGORY_CALL_OUT_AFTER_START
	case policy.CategoryNoCallNoShow:
		return rosterpb.InfractionCategory_INFRACTION_CATEGORY_NO_CALL_NO_SHOW
	case policy.CategoryTardyShort:
		return rosterpb.InfractionCategory_INFRACTION_CATEGORY_TARDY_SHORT
	case policy.CategoryTardyLong:
		return rosterpb.InfractionCategory_INFRACTION_CATEGORY_TARDY_LONG
	case policy.CategoryEarlyDepartShort:
		return rosterpb.InfractionCategory_INFRACTION_CATEGORY_EARLY_DEPARTURE_SHORT
	case policy.CategoryEarlyDepartLong:
		return rosterpb.InfractionCategory_INFRACTION_CATEGORY_EARLY_DEPARTURE_LONG
	case policy.CategoryLateReturnShort:
		return rosterpb.InfractionCategory_INFRACTION_CATEGORY_LATE_RETURN_SHORT
	case policy.CategoryLateReturnLong:
		return rosterpb.InfractionCategory_INFRACTION_CATEGORY_LATE_RETURN_LONG
	default:
		return rosterpb.InfractionCategory_INFRACTION_CATEGORY_UNSPECIFIED
	}
}

func toProtoStanding(s policy.Status) rosterpb.Standing {
	switch s {
	case policy.StatusTermination:
		return rosterpb.Standing_STANDING_TERMINATION
	case policy.StatusFinalWrittenWarning:
		return rosterpb.Standing_STANDING_FINAL_WRITTEN_WARNING
	case policy.StatusFirstWrittenWarning:
		return rosterpb.Standing_STANDING_FIRST_WRITTEN_WARNING
	default:
		return rosterpb.Standing_STANDING_OK
	}
}
