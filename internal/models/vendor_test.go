package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// VendorTestSuite defines the test suite for the Vendor model
type VendorTestSuite struct {
	suite.Suite
}

// TestVendorSuite runs the test suite
func TestVendorSuite(t *testing.T) {
	suite.Run(t, new(VendorTestSuite))
}

func (s *VendorTestSuite) TestBeforeCreate_AssignsDefaults() {
	vendor := &Vendor{Name: "Acme Corp"}

	err := vendor.BeforeCreate(nil)

	s.NoError(err)
	s.NotEqual(uuid.Nil, vendor.ID)
	s.Equal(DefaultVendorCategory, vendor.Category)
	s.False(vendor.CreatedAt.IsZero())
	s.False(vendor.UpdatedAt.IsZero())
}

func (s *VendorTestSuite) TestBeforeCreate_KeepsExistingValues() {
	id := uuid.New()
	vendor := &Vendor{ID: id, Name: "Acme Corp", Category: "IT Services"}

	err := vendor.BeforeCreate(nil)

	s.NoError(err)
	s.Equal(id, vendor.ID)
	s.Equal("IT Services", vendor.Category)
}

func (s *VendorTestSuite) TestValidate_RequiresName() {
	vendor := &Vendor{}

	err := vendor.Validate()

	s.ErrorIs(err, ErrVendorNameRequired)
}

func (s *VendorTestSuite) TestDisplayCategory() {
	s.Equal("IT Services", (&Vendor{Category: "IT Services"}).DisplayCategory())
	s.Equal(UnknownCategory, (&Vendor{}).DisplayCategory())
}
