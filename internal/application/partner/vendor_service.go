package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/partner"
	"github.com/textile/backend/internal/domain/shared"
)

// VendorService handles vendor-related business operations
type VendorService struct {
	vendorRepo partner.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo partner.VendorRepository) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
	}
}

// Create creates a new vendor
func (s *VendorService) Create(ctx context.Context, tenantID uuid.UUID, req CreateVendorRequest) (*VendorResponse, error) {
	exists, err := s.vendorRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Vendor with this code already exists")
	}

	vendor, err := partner.NewVendor(tenantID, req.Code, req.Name, partner.VendorType(req.Type))
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := vendor.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Address != "" {
		if err := vendor.SetAddress(req.Address); err != nil {
			return nil, err
		}
	}
	if req.PaymentTerms != nil {
		if err := vendor.SetPaymentTerms(*req.PaymentTerms); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		vendor.SetNotes(req.Notes)
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, vendorID)
	if err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// List retrieves vendors with filtering and pagination
func (s *VendorService) List(ctx context.Context, tenantID uuid.UUID, filter VendorListFilter) (*shared.Paginated[VendorResponse], error) {
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
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}

	vendors, err := s.vendorRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.vendorRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToVendorResponses(vendors), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update updates a vendor
func (s *VendorService) Update(ctx context.Context, tenantID, vendorID uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Type != nil {
		name := vendor.Name
		vendorType := vendor.Type
		if req.Name != nil {
			name = *req.Name
		}
		if req.Type != nil {
			vendorType = partner.VendorType(*req.Type)
		}
		if err := vendor.Update(name, vendorType); err != nil {
			return nil, err
		}
	}

	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contactName := vendor.ContactName
		phone := vendor.Phone
		email := vendor.Email
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := vendor.SetContact(contactName, phone, email); err != nil {
			return nil, err
		}
	}

	if req.Address != nil {
		if err := vendor.SetAddress(*req.Address); err != nil {
			return nil, err
		}
	}
	if req.PaymentTerms != nil {
		if err := vendor.SetPaymentTerms(*req.PaymentTerms); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		vendor.SetNotes(*req.Notes)
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// Delete deletes a deactivated vendor that has no outstanding balance
func (s *VendorService) Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, vendorID)
	if err != nil {
		return err
	}

	if vendor.IsActive() {
		return shared.NewDomainError("INVALID_STATUS", "Vendor must be deactivated before deletion")
	}
	if vendor.HasBalance() {
		return shared.NewDomainError("HAS_BALANCE", "Cannot delete vendor with outstanding balance")
	}

	return s.vendorRepo.DeleteForTenant(ctx, tenantID, vendorID)
}

// Activate activates a vendor
func (s *VendorService) Activate(ctx context.Context, tenantID, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, vendorID)
	if err != nil {
		return nil, err
	}

	if err := vendor.Activate(); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// Deactivate deactivates a vendor
func (s *VendorService) Deactivate(ctx context.Context, tenantID, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, vendorID)
	if err != nil {
		return nil, err
	}

	if err := vendor.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}
