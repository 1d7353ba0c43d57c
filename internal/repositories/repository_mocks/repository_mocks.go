// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package repository_mocks is a generated GoMock package.
package repository_mocks

import (
	models "flowbit-analytics/internal/models"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockVendorRepositoryInterface is a mock of VendorRepositoryInterface interface.
type MockVendorRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockVendorRepositoryInterfaceMockRecorder
}

// MockVendorRepositoryInterfaceMockRecorder is the mock recorder for MockVendorRepositoryInterface.
type MockVendorRepositoryInterfaceMockRecorder struct {
	mock *MockVendorRepositoryInterface
}

// NewMockVendorRepositoryInterface creates a new mock instance.
func NewMockVendorRepositoryInterface(ctrl *gomock.Controller) *MockVendorRepositoryInterface {
	mock := &MockVendorRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockVendorRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVendorRepositoryInterface) EXPECT() *MockVendorRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Count mocks base method.
func (m *MockVendorRepositoryInterface) Count() (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count")
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockVendorRepositoryInterfaceMockRecorder) Count() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockVendorRepositoryInterface)(nil).Count))
}

// Create mocks base method.
func (m *MockVendorRepositoryInterface) Create(vendor *models.Vendor) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", vendor)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockVendorRepositoryInterfaceMockRecorder) Create(vendor interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockVendorRepositoryInterface)(nil).Create), vendor)
}

// CreateBatch mocks base method.
func (m *MockVendorRepositoryInterface) CreateBatch(vendors []*models.Vendor) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBatch", vendors)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBatch indicates an expected call of CreateBatch.
func (mr *MockVendorRepositoryInterfaceMockRecorder) CreateBatch(vendors interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBatch", reflect.TypeOf((*MockVendorRepositoryInterface)(nil).CreateBatch), vendors)
}

// GetAllWithInvoices mocks base method.
func (m *MockVendorRepositoryInterface) GetAllWithInvoices() ([]models.Vendor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllWithInvoices")
	ret0, _ := ret[0].([]models.Vendor)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllWithInvoices indicates an expected call of GetAllWithInvoices.
func (mr *MockVendorRepositoryInterfaceMockRecorder) GetAllWithInvoices() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllWithInvoices", reflect.TypeOf((*MockVendorRepositoryInterface)(nil).GetAllWithInvoices))
}

// GetByID mocks base method.
func (m *MockVendorRepositoryInterface) GetByID(id uuid.UUID) (*models.Vendor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Vendor)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockVendorRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockVendorRepositoryInterface)(nil).GetByID), id)
}

// GetByName mocks base method.
func (m *MockVendorRepositoryInterface) GetByName(name string) (*models.Vendor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByName", name)
	ret0, _ := ret[0].(*models.Vendor)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByName indicates an expected call of GetByName.
func (mr *MockVendorRepositoryInterfaceMockRecorder) GetByName(name interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByName", reflect.TypeOf((*MockVendorRepositoryInterface)(nil).GetByName), name)
}

// MockInvoiceRepositoryInterface is a mock of InvoiceRepositoryInterface interface.
type MockInvoiceRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockInvoiceRepositoryInterfaceMockRecorder
}

// MockInvoiceRepositoryInterfaceMockRecorder is the mock recorder for MockInvoiceRepositoryInterface.
type MockInvoiceRepositoryInterfaceMockRecorder struct {
	mock *MockInvoiceRepositoryInterface
}

// NewMockInvoiceRepositoryInterface creates a new mock instance.
func NewMockInvoiceRepositoryInterface(ctrl *gomock.Controller) *MockInvoiceRepositoryInterface {
	mock := &MockInvoiceRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockInvoiceRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInvoiceRepositoryInterface) EXPECT() *MockInvoiceRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Count mocks base method.
func (m *MockInvoiceRepositoryInterface) Count() (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count")
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockInvoiceRepositoryInterfaceMockRecorder) Count() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockInvoiceRepositoryInterface)(nil).Count))
}

// Create mocks base method.
func (m *MockInvoiceRepositoryInterface) Create(invoice *models.Invoice) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", invoice)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockInvoiceRepositoryInterfaceMockRecorder) Create(invoice interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockInvoiceRepositoryInterface)(nil).Create), invoice)
}

// CreateBatch mocks base method.
func (m *MockInvoiceRepositoryInterface) CreateBatch(invoices []*models.Invoice) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBatch", invoices)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBatch indicates an expected call of CreateBatch.
func (mr *MockInvoiceRepositoryInterfaceMockRecorder) CreateBatch(invoices interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBatch", reflect.TypeOf((*MockInvoiceRepositoryInterface)(nil).CreateBatch), invoices)
}

// GetAll mocks base method.
func (m *MockInvoiceRepositoryInterface) GetAll() ([]models.Invoice, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll")
	ret0, _ := ret[0].([]models.Invoice)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockInvoiceRepositoryInterfaceMockRecorder) GetAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockInvoiceRepositoryInterface)(nil).GetAll))
}

// GetAllWithVendor mocks base method.
func (m *MockInvoiceRepositoryInterface) GetAllWithVendor() ([]models.Invoice, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllWithVendor")
	ret0, _ := ret[0].([]models.Invoice)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllWithVendor indicates an expected call of GetAllWithVendor.
func (mr *MockInvoiceRepositoryInterfaceMockRecorder) GetAllWithVendor() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllWithVendor", reflect.TypeOf((*MockInvoiceRepositoryInterface)(nil).GetAllWithVendor))
}

// GetByID mocks base method.
func (m *MockInvoiceRepositoryInterface) GetByID(id uuid.UUID) (*models.Invoice, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Invoice)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockInvoiceRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockInvoiceRepositoryInterface)(nil).GetByID), id)
}

// GetByStatus mocks base method.
func (m *MockInvoiceRepositoryInterface) GetByStatus(status string, limit int) ([]models.Invoice, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByStatus", status, limit)
	ret0, _ := ret[0].([]models.Invoice)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByStatus indicates an expected call of GetByStatus.
func (mr *MockInvoiceRepositoryInterfaceMockRecorder) GetByStatus(status, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByStatus", reflect.TypeOf((*MockInvoiceRepositoryInterface)(nil).GetByStatus), status, limit)
}

// GetRecent mocks base method.
func (m *MockInvoiceRepositoryInterface) GetRecent(limit int) ([]models.Invoice, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecent", limit)
	ret0, _ := ret[0].([]models.Invoice)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecent indicates an expected call of GetRecent.
func (mr *MockInvoiceRepositoryInterfaceMockRecorder) GetRecent(limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecent", reflect.TypeOf((*MockInvoiceRepositoryInterface)(nil).GetRecent), limit)
}

// ListWithFilters mocks base method.
func (m *MockInvoiceRepositoryInterface) ListWithFilters(filters models.InvoiceFilters) ([]models.Invoice, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListWithFilters", filters)
	ret0, _ := ret[0].([]models.Invoice)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListWithFilters indicates an expected call of ListWithFilters.
func (mr *MockInvoiceRepositoryInterfaceMockRecorder) ListWithFilters(filters interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListWithFilters", reflect.TypeOf((*MockInvoiceRepositoryInterface)(nil).ListWithFilters), filters)
}
