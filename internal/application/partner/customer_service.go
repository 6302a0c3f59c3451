package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/partner"
	"github.com/textile/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	exists, err := s.customerRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this code already exists")
	}

	customer, err := partner.NewCustomer(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := customer.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Address != "" {
		if err := customer.SetAddress(req.Address); err != nil {
			return nil, err
		}
	}
	if req.CreditLimit != nil {
		if err := customer.SetCreditLimit(*req.CreditLimit); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		customer.SetNotes(req.Notes)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, tenantID uuid.UUID, filter CustomerListFilter) (*shared.Paginated[CustomerResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	customers, err := s.customerRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.customerRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToCustomerResponses(customers), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update updates a customer
func (s *CustomerService) Update(ctx context.Context, tenantID, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := customer.Update(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contactName := customer.ContactName
		phone := customer.Phone
		email := customer.Email
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := customer.SetContact(contactName, phone, email); err != nil {
			return nil, err
		}
	}

	if req.Address != nil {
		if err := customer.SetAddress(*req.Address); err != nil {
			return nil, err
		}
	}
	if req.CreditLimit != nil {
		if err := customer.SetCreditLimit(*req.CreditLimit); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		customer.SetNotes(*req.Notes)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete deletes a deactivated customer that has no outstanding balance
func (s *CustomerService) Delete(ctx context.Context, tenantID, customerID uuid.UUID) error {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return err
	}

	if customer.IsActive() {
		return shared.NewDomainError("INVALID_STATUS", "Customer must be deactivated before deletion")
	}
	if customer.HasBalance() {
		return shared.NewDomainError("HAS_BALANCE", "Cannot delete customer with outstanding balance")
	}

	return s.customerRepo.DeleteForTenant(ctx, tenantID, customerID)
}

// Activate activates a customer
func (s *CustomerService) Activate(ctx context.Context, tenantID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	if err := customer.Activate(); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Deactivate deactivates a customer
func (s *CustomerService) Deactivate(ctx context.Context, tenantID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	if err := customer.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}
