package repositories

import (
	"testing"
	"time"

	"flowbit-analytics/internal/database"
	"flowbit-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// VendorRepositorySuite defines the test suite for VendorRepository
type VendorRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo VendorRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *VendorRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewVendorRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *VendorRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestVendorRepositorySuite runs the test suite
func TestVendorRepositorySuite(t *testing.T) {
	suite.Run(t, new(VendorRepositorySuite))
}

func (s *VendorRepositorySuite) TestCreate() {
	vendor := &models.Vendor{Name: "Acme Corp", Category: "IT Services"}

	err := s.repo.Create(vendor)

	s.NoError(err)
	s.NotEqual(uuid.Nil, vendor.ID)

	found, err := s.repo.GetByID(vendor.ID)
	s.NoError(err)
	s.Equal("Acme Corp", found.Name)
	s.Equal("IT Services", found.Category)
}

func (s *VendorRepositorySuite) TestCreate_DefaultCategory() {
	vendor := &models.Vendor{Name: "Globex"}

	err := s.repo.Create(vendor)

	s.NoError(err)
	s.Equal(models.DefaultVendorCategory, vendor.Category)
}

func (s *VendorRepositorySuite) TestCreate_DuplicateNameFails() {
	s.NoError(s.repo.Create(&models.Vendor{Name: "Acme Corp"}))

	err := s.repo.Create(&models.Vendor{Name: "Acme Corp"})

	s.Error(err)
}

func (s *VendorRepositorySuite) TestCreateBatch() {
	vendors := []*models.Vendor{
		{Name: "Acme Corp"},
		{Name: "Globex"},
		{Name: "Initech"},
	}

	err := s.repo.CreateBatch(vendors)

	s.NoError(err)

	count, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(3), count)
}

func (s *VendorRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(nil))
}

func (s *VendorRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())

	s.ErrorIs(err, ErrVendorNotFound)
}

func (s *VendorRepositorySuite) TestGetByName() {
	created := database.CreateTestVendor(s.T(), s.db, "Acme Corp", "IT Services")

	found, err := s.repo.GetByName("Acme Corp")

	s.NoError(err)
	s.Equal(created.ID, found.ID)

	_, err = s.repo.GetByName("No Such Vendor")
	s.ErrorIs(err, ErrVendorNotFound)
}

func (s *VendorRepositorySuite) TestGetAllWithInvoices() {
	vendor := database.CreateTestVendor(s.T(), s.db, "Acme Corp", "IT Services")
	empty := database.CreateTestVendor(s.T(), s.db, "Globex", "Logistics")

	now := time.Now().UTC()
	database.CreateTestInvoice(s.T(), s.db, vendor, "INV-2026-000001", 100.00, now, now)
	database.CreateTestInvoice(s.T(), s.db, vendor, "INV-2026-000002", 50.00, now, now)

	vendors, err := s.repo.GetAllWithInvoices()

	s.NoError(err)
	s.Len(vendors, 2)
	s.Equal(vendor.ID, vendors[0].ID)
	s.Len(vendors[0].Invoices, 2)
	s.Equal(empty.ID, vendors[1].ID)
	s.Empty(vendors[1].Invoices)
}

func (s *VendorRepositorySuite) TestCount_Empty() {
	count, err := s.repo.Count()

	s.NoError(err)
	s.Equal(int64(0), count)
}
