// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	dto "flowbit-analytics/internal/dto"
	models "flowbit-analytics/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
)

// MockAnalyticsServiceInterface is a mock of AnalyticsServiceInterface interface.
type MockAnalyticsServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAnalyticsServiceInterfaceMockRecorder
}

// MockAnalyticsServiceInterfaceMockRecorder is the mock recorder for MockAnalyticsServiceInterface.
type MockAnalyticsServiceInterfaceMockRecorder struct {
	mock *MockAnalyticsServiceInterface
}

// NewMockAnalyticsServiceInterface creates a new mock instance.
func NewMockAnalyticsServiceInterface(ctrl *gomock.Controller) *MockAnalyticsServiceInterface {
	mock := &MockAnalyticsServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAnalyticsServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAnalyticsServiceInterface) EXPECT() *MockAnalyticsServiceInterfaceMockRecorder {
	return m.recorder
}

// CashOutflow mocks base method.
func (m *MockAnalyticsServiceInterface) CashOutflow() ([]models.OutflowBucket, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CashOutflow")
	ret0, _ := ret[0].([]models.OutflowBucket)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CashOutflow indicates an expected call of CashOutflow.
func (mr *MockAnalyticsServiceInterfaceMockRecorder) CashOutflow() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CashOutflow", reflect.TypeOf((*MockAnalyticsServiceInterface)(nil).CashOutflow))
}

// CategorySpend mocks base method.
func (m *MockAnalyticsServiceInterface) CategorySpend() ([]models.CategorySpend, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CategorySpend")
	ret0, _ := ret[0].([]models.CategorySpend)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CategorySpend indicates an expected call of CategorySpend.
func (mr *MockAnalyticsServiceInterfaceMockRecorder) CategorySpend() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CategorySpend", reflect.TypeOf((*MockAnalyticsServiceInterface)(nil).CategorySpend))
}

// MonthlyTrend mocks base method.
func (m *MockAnalyticsServiceInterface) MonthlyTrend() ([]models.MonthlyTrend, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MonthlyTrend")
	ret0, _ := ret[0].([]models.MonthlyTrend)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MonthlyTrend indicates an expected call of MonthlyTrend.
func (mr *MockAnalyticsServiceInterfaceMockRecorder) MonthlyTrend() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MonthlyTrend", reflect.TypeOf((*MockAnalyticsServiceInterface)(nil).MonthlyTrend))
}

// SummaryStats mocks base method.
func (m *MockAnalyticsServiceInterface) SummaryStats() (*models.SummaryStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SummaryStats")
	ret0, _ := ret[0].(*models.SummaryStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SummaryStats indicates an expected call of SummaryStats.
func (mr *MockAnalyticsServiceInterfaceMockRecorder) SummaryStats() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SummaryStats", reflect.TypeOf((*MockAnalyticsServiceInterface)(nil).SummaryStats))
}

// TopVendors mocks base method.
func (m *MockAnalyticsServiceInterface) TopVendors() ([]models.VendorSpend, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TopVendors")
	ret0, _ := ret[0].([]models.VendorSpend)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TopVendors indicates an expected call of TopVendors.
func (mr *MockAnalyticsServiceInterfaceMockRecorder) TopVendors() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TopVendors", reflect.TypeOf((*MockAnalyticsServiceInterface)(nil).TopVendors))
}

// MockInvoiceServiceInterface is a mock of InvoiceServiceInterface interface.
type MockInvoiceServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockInvoiceServiceInterfaceMockRecorder
}

// MockInvoiceServiceInterfaceMockRecorder is the mock recorder for MockInvoiceServiceInterface.
type MockInvoiceServiceInterfaceMockRecorder struct {
	mock *MockInvoiceServiceInterface
}

// NewMockInvoiceServiceInterface creates a new mock instance.
func NewMockInvoiceServiceInterface(ctrl *gomock.Controller) *MockInvoiceServiceInterface {
	mock := &MockInvoiceServiceInterface{ctrl: ctrl}
	mock.recorder = &MockInvoiceServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInvoiceServiceInterface) EXPECT() *MockInvoiceServiceInterfaceMockRecorder {
	return m.recorder
}

// ListInvoices mocks base method.
func (m *MockInvoiceServiceInterface) ListInvoices(query dto.InvoiceListQuery) ([]dto.InvoiceRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListInvoices", query)
	ret0, _ := ret[0].([]dto.InvoiceRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListInvoices indicates an expected call of ListInvoices.
func (mr *MockInvoiceServiceInterfaceMockRecorder) ListInvoices(query interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListInvoices", reflect.TypeOf((*MockInvoiceServiceInterface)(nil).ListInvoices), query)
}

// MockChatServiceInterface is a mock of ChatServiceInterface interface.
type MockChatServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockChatServiceInterfaceMockRecorder
}

// MockChatServiceInterfaceMockRecorder is the mock recorder for MockChatServiceInterface.
type MockChatServiceInterfaceMockRecorder struct {
	mock *MockChatServiceInterface
}

// NewMockChatServiceInterface creates a new mock instance.
func NewMockChatServiceInterface(ctrl *gomock.Controller) *MockChatServiceInterface {
	mock := &MockChatServiceInterface{ctrl: ctrl}
	mock.recorder = &MockChatServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockChatServiceInterface) EXPECT() *MockChatServiceInterfaceMockRecorder {
	return m.recorder
}

// Ask mocks base method.
func (m *MockChatServiceInterface) Ask(query string) (*dto.ChatResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ask", query)
	ret0, _ := ret[0].(*dto.ChatResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Ask indicates an expected call of Ask.
func (mr *MockChatServiceInterfaceMockRecorder) Ask(query interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ask", reflect.TypeOf((*MockChatServiceInterface)(nil).Ask), query)
}

// MockInvoiceGeneratorInterface is a mock of InvoiceGeneratorInterface interface.
type MockInvoiceGeneratorInterface struct {
	ctrl     *gomock.Controller
	recorder *MockInvoiceGeneratorInterfaceMockRecorder
}

// MockInvoiceGeneratorInterfaceMockRecorder is the mock recorder for MockInvoiceGeneratorInterface.
type MockInvoiceGeneratorInterfaceMockRecorder struct {
	mock *MockInvoiceGeneratorInterface
}

// NewMockInvoiceGeneratorInterface creates a new mock instance.
func NewMockInvoiceGeneratorInterface(ctrl *gomock.Controller) *MockInvoiceGeneratorInterface {
	mock := &MockInvoiceGeneratorInterface{ctrl: ctrl}
	mock.recorder = &MockInvoiceGeneratorInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInvoiceGeneratorInterface) EXPECT() *MockInvoiceGeneratorInterfaceMockRecorder {
	return m.recorder
}

// GenerateInvoices mocks base method.
func (m *MockInvoiceGeneratorInterface) GenerateInvoices(vendors []*models.Vendor, count int, from, to time.Time) []*models.Invoice {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateInvoices", vendors, count, from, to)
	ret0, _ := ret[0].([]*models.Invoice)
	return ret0
}

// GenerateInvoices indicates an expected call of GenerateInvoices.
func (mr *MockInvoiceGeneratorInterfaceMockRecorder) GenerateInvoices(vendors, count, from, to interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateInvoices", reflect.TypeOf((*MockInvoiceGeneratorInterface)(nil).GenerateInvoices), vendors, count, from, to)
}

// GenerateVendors mocks base method.
func (m *MockInvoiceGeneratorInterface) GenerateVendors(count int) []*models.Vendor {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateVendors", count)
	ret0, _ := ret[0].([]*models.Vendor)
	return ret0
}

// GenerateVendors indicates an expected call of GenerateVendors.
func (mr *MockInvoiceGeneratorInterfaceMockRecorder) GenerateVendors(count interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateVendors", reflect.TypeOf((*MockInvoiceGeneratorInterface)(nil).GenerateVendors), count)
}

// MockMetricsRecorderInterface is a mock of MetricsRecorderInterface interface.
type MockMetricsRecorderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsRecorderInterfaceMockRecorder
}

// MockMetricsRecorderInterfaceMockRecorder is the mock recorder for MockMetricsRecorderInterface.
type MockMetricsRecorderInterfaceMockRecorder struct {
	mock *MockMetricsRecorderInterface
}

// NewMockMetricsRecorderInterface creates a new mock instance.
func NewMockMetricsRecorderInterface(ctrl *gomock.Controller) *MockMetricsRecorderInterface {
	mock := &MockMetricsRecorderInterface{ctrl: ctrl}
	mock.recorder = &MockMetricsRecorderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetricsRecorderInterface) EXPECT() *MockMetricsRecorderInterfaceMockRecorder {
	return m.recorder
}

// IncrementAggregation mocks base method.
func (m *MockMetricsRecorderInterface) IncrementAggregation(name, outcome string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "IncrementAggregation", name, outcome)
}

// IncrementAggregation indicates an expected call of IncrementAggregation.
func (mr *MockMetricsRecorderInterfaceMockRecorder) IncrementAggregation(name, outcome interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementAggregation", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).IncrementAggregation), name, outcome)
}

// RecordAggregationDuration mocks base method.
func (m *MockMetricsRecorderInterface) RecordAggregationDuration(name string, duration time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordAggregationDuration", name, duration)
}

// RecordAggregationDuration indicates an expected call of RecordAggregationDuration.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordAggregationDuration(name, duration interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordAggregationDuration", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordAggregationDuration), name, duration)
}

// RecordRowsScanned mocks base method.
func (m *MockMetricsRecorderInterface) RecordRowsScanned(name string, rows int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordRowsScanned", name, rows)
}

// RecordRowsScanned indicates an expected call of RecordRowsScanned.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordRowsScanned(name, rows interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordRowsScanned", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordRowsScanned), name, rows)
}
