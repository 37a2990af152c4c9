package handler

import (
	"context"
	"testing"
	"time"

	rosterpb "github.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/roster/v1"
	"github.com/ogurasousui/kintai-points/internal/core/policy"
	"github.com/ogurasousui/kintai-points/internal/core/roster"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubRosterUseCase struct {
	addInput roster.AddEmployeeInput
	addOut   *roster.Employee
	addErr   error

	renameInput roster.RenameEmployeeInput
	renameOut   *roster.Employee
	renameErr   error

	setNumberInput roster.SetEmployeeNumberInput
	setNumberOut   *roster.Employee
	setNumberErr   error

	deleteInput roster.DeleteEmployeeInput
	deleteErr   error

	addInfInput roster.AddInfractionInput
	addInfOut   *roster.Employee
	addInfErr   error

	deleteInfInput roster.DeleteInfractionInput
	deleteInfOut   *roster.Employee
	deleteInfErr   error

	getInput roster.GetEmployeeInput
	getOut   *roster.Employee
	getErr   error

	listOut []*roster.Employee
	listErr error
}

func (s *stubRosterUseCase) AddEmployee(_ context.Context, in roster.AddEmployeeInput) (*roster.Employee, error) {
	s.addInput = in
	return s.addOut, s.addErr
}

func (s *stubRosterUseCase) RenameEmployee(_ context.Context, in roster.RenameEmployeeInput) (*roster.Employee, error) {
	s.renameInput = in
	return s.renameOut, s.renameErr
}

func (s *stubRosterUseCase) SetEmployeeNumber(_ context.Context, in roster.SetEmployeeNumberInput) (*roster.Employee, error) {
	s.setNumberInput = in
	return s.setNumberOut, s.setNumberErr
}

func (s *stubRosterUseCase) DeleteEmployee(_ context.Context, in roster.DeleteEmployeeInput) error {
	s.deleteInput = in
	return s.deleteErr
}

func (s *stubRosterUseCase) AddInfraction(_ context.Context, in roster.AddInfractionInput) (*roster.Employee, error) {
	s.addInfInput = in
	return s.addInfOut, s.addInfErr
}

func (s *stubRosterUseCase) DeleteInfraction(_ context.Context, in roster.DeleteInfractionInput) (*roster.Employee, error) {
	s.deleteInfInput = in
	return s.deleteInfOut, s.deleteInfErr
}

func (s *stubRosterUseCase) GetEmployee(_ context.Context, in roster.GetEmployeeInput) (*roster.Employee, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubRosterUseCase) ListEmployees(_ context.Context) ([]*roster.Employee, error) {
	return s.listOut, s.listErr
}

func TestRosterHandler_AddEmployee(t *testing.T) {
	t.Parallel()

	stub := &stubRosterUseCase{
		addOut: &roster.Employee{ID: "emp-1", Number: "4471", Name: "Jane Doe", Infractions: []*roster.Infraction{}},
	}
	h := NewRosterGrpcHandler(stub)

	resp, err := h.AddEmployee(context.Background(), &rosterpb.AddEmployeeRequest{Name: "Jane Doe", EmployeeNumber: "4471"})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}

	if stub.addInput.Name != "Jane Doe" || stub.addInput.Number != "4471" {
		t.Fatalf("unexpected input %+v", stub.addInput)
	}

	emp := resp.GetEmployee()
	if emp.GetId() != "emp-1" || emp.GetEmployeeNumber() != "4471" {
		t.Fatalf("unexpected employee %+v", emp)
	}
	if emp.GetStanding() != rosterpb.Standing_STANDING_OK || emp.GetTone() != "ok" {
		t.Fatalf("expected derived OK standing, got %+v", emp)
	}
}

func TestRosterHandler_AddEmployee_DuplicateNumber(t *testing.T) {
	t.Parallel()

	stub := &stubRosterUseCase{addErr: roster.ErrNumberAlreadyExists}
	h := NewRosterGrpcHandler(stub)

	_, err := h.AddEmployee(context.Background(), &rosterpb.AddEmployeeRequest{Name: "John", EmployeeNumber: "4471"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}

func TestRosterHandler_AddInfraction(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	stub := &stubRosterUseCase{
		addInfOut: &roster.Employee{
			ID:   "emp-1",
			Name: "Jane",
			Infractions: []*roster.Infraction{
				{ID: "inf-1", Category: policy.CategoryNoCallNoShow, Points: 8, Date: date},
			},
		},
	}
	h := NewRosterGrpcHandler(stub)

	resp, err := h.AddInfraction(context.Background(), &rosterpb.AddInfractionRequest{
		EmployeeId: "emp-1",
		Category:   rosterpb.InfractionCategory_INFRACTION_CATEGORY_NO_CALL_NO_SHOW,
		Date:       "2025-06-01",
		Store:      "Store 1",
	})
	if err != nil {
		t.Fatalf("AddInfraction returned error: %v", err)
	}

	if stub.addInfInput.Category != policy.CategoryNoCallNoShow {
		t.Fatalf("unexpected category %s", stub.addInfInput.Category)
	}
	if !stub.addInfInput.Date.Equal(date) {
		t.Fatalf("unexpected date %v", stub.addInfInput.Date)
	}

	emp := resp.GetEmployee()
	if emp.GetTotalPoints() != 8 {
		t.Fatalf("expected total 8, got %d", emp.GetTotalPoints())
	}
	if emp.GetStanding() != rosterpb.Standing_STANDING_FINAL_WRITTEN_WARNING {
		t.Fatalf("expected final written warning, got %v", emp.GetStanding())
	}
	if emp.GetStandingLabel() != "Final Written Warning" || emp.GetTone() != "warn" {
		t.Fatalf("unexpected derived fields %+v", emp)
	}
	if emp.GetInfractions()[0].GetLabel() != "No Call / No Show" {
		t.Fatalf("unexpected infraction label %q", emp.GetInfractions()[0].GetLabel())
	}
}

func TestRosterHandler_AddInfraction_InvalidInput(t *testing.T) {
	t.Parallel()

	h := NewRosterGrpcHandler(&stubRosterUseCase{})

	_, err := h.AddInfraction(context.Background(), &rosterpb.AddInfractionRequest{
		EmployeeId: "emp-1",
		Category:   rosterpb.InfractionCategory_INFRACTION_CATEGORY_UNSPECIFIED,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for unspecified category, got %v", err)
	}

	_, err = h.AddInfraction(context.Background(), &rosterpb.AddInfractionRequest{
		EmployeeId: "emp-1",
		Category:   rosterpb.InfractionCategory_INFRACTION_CATEGORY_TARDY_SHORT,
		Date:       "06/01/2025",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for bad date, got %v", err)
	}
}

func TestRosterHandler_GetEmployee_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubRosterUseCase{getErr: roster.ErrEmployeeNotFound}
	h := NewRosterGrpcHandler(stub)

	_, err := h.GetEmployee(context.Background(), &rosterpb.GetEmployeeRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestRosterHandler_ListEmployees(t *testing.T) {
	t.Parallel()

	stub := &stubRosterUseCase{
		listOut: []*roster.Employee{
			{ID: "emp-2", Name: "Newest"},
			{ID: "emp-1", Name: "Oldest"},
		},
	}
	h := NewRosterGrpcHandler(stub)

	resp, err := h.ListEmployees(context.Background(), &rosterpb.ListEmployeesRequest{})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}

	employees := resp.GetEmployees()
	if len(employees) != 2 || employees[0].GetId() != "emp-2" {
		t.Fatalf("unexpected list %+v", employees)
	}
}

func TestCategoryMapping_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range policy.Categories() {
		pb := toProtoCategory(c)
		if pb == rosterpb.InfractionCategory_INFRACTION_CATEGORY_UNSPECIFIED {
			t.Fatalf("category %s mapped to unspecified", c)
		}
		back, err := toDomainCategory(pb)
		if err != nil {
			t.Fatalf("toDomainCategory(%v) returned error: %v", pb, err)
		}
		if back != c {
			t.Fatalf("round trip mismatch: %s -> %v -> %s", c, pb, back)
		}
	}
}
