//nolint:errcheck
package m700

import (
	"github.com/stretchr/testify/mock"

	"github.com/arloliu/go-eznc/eznc"
)

// MockEndpoint implements the eznc.Endpoint interface for testing.
type MockEndpoint struct {
	mock.Mock
}

var _ eznc.Endpoint = (*MockEndpoint)(nil)

func (m *MockEndpoint) Bind(ip string, port int32) int32 {
	args := m.Called(ip, port)
	return args.Get(0).(int32)
}

func (m *MockEndpoint) Open(machineType, unitNo, timeout int32, hostName string) int32 {
	args := m.Called(machineType, unitNo, timeout, hostName)
	return args.Get(0).(int32)
}

func (m *MockEndpoint) Close() int32 {
	args := m.Called()
	return args.Get(0).(int32)
}

func (m *MockEndpoint) Release() int32 {
	args := m.Called()
	return args.Get(0).(int32)
}

func (m *MockEndpoint) DriveInformation() (int32, string) {
	args := m.Called()
	return args.Get(0).(int32), args.String(1)
}

func (m *MockEndpoint) Version(typ, no int32) (int32, string) {
	args := m.Called(typ, no)
	return args.Get(0).(int32), args.String(1)
}

func (m *MockEndpoint) CurrentPosition(axis int32) (int32, float64) {
	args := m.Called(axis)
	return args.Get(0).(int32), args.Get(1).(float64)
}

func (m *MockEndpoint) RunStatus(kind int32) (int32, int32) {
	args := m.Called(kind)
	return args.Get(0).(int32), args.Get(1).(int32)
}

func (m *MockEndpoint) SpindleMonitor(metric, spindle int32) (int32, int32, string) {
	args := m.Called(metric, spindle)
	return args.Get(0).(int32), args.Get(1).(int32), args.String(2)
}

func (m *MockEndpoint) CommonVariableName(index int32) (int32, string) {
	args := m.Called(index)
	return args.Get(0).(int32), args.String(1)
}

func (m *MockEndpoint) MagazineSize() (int32, int32) {
	args := m.Called()
	return args.Get(0).(int32), args.Get(1).(int32)
}

func (m *MockEndpoint) MagazineReady(magazine, standby int32) (int32, int32) {
	args := m.Called(magazine, standby)
	return args.Get(0).(int32), args.Get(1).(int32)
}

func (m *MockEndpoint) ToolSetSize() (int32, int32) {
	args := m.Called()
	return args.Get(0).(int32), args.Get(1).(int32)
}

func (m *MockEndpoint) ToolOffset(typ, kind, toolSetNo int32) (int32, float64, int32) {
	args := m.Called(typ, kind, toolSetNo)
	return args.Get(0).(int32), args.Get(1).(float64), args.Get(2).(int32)
}

func (m *MockEndpoint) SetToolOffset(typ, kind, toolSetNo int32, offset float64, edgeNo int32) int32 {
	args := m.Called(typ, kind, toolSetNo, offset, edgeNo)
	return args.Get(0).(int32)
}

func (m *MockEndpoint) ProgramNumber(kind int32) (int32, string) {
	args := m.Called(kind)
	return args.Get(0).(int32), args.String(1)
}

func (m *MockEndpoint) Alarm(maxLines, typ int32) (int32, string) {
	args := m.Called(maxLines, typ)
	return args.Get(0).(int32), args.String(1)
}

func (m *MockEndpoint) OpenFile(path string, mode int32) int32 {
	args := m.Called(path, mode)
	return args.Get(0).(int32)
}

func (m *MockEndpoint) ReadFile(size int32) (int32, []byte) {
	args := m.Called(size)
	if args.Get(1) == nil {
		return args.Get(0).(int32), nil
	}

	return args.Get(0).(int32), args.Get(1).([]byte)
}

func (m *MockEndpoint) WriteFile(data []byte) int32 {
	args := m.Called(data)
	return args.Get(0).(int32)
}

func (m *MockEndpoint) CloseFile() int32 {
	args := m.Called()
	return args.Get(0).(int32)
}

func (m *MockEndpoint) DeleteFile(path string) int32 {
	args := m.Called(path)
	return args.Get(0).(int32)
}

func (m *MockEndpoint) FindDir(path string, mode int32) (int32, string) {
	args := m.Called(path, mode)
	return args.Get(0).(int32), args.String(1)
}

func (m *MockEndpoint) FindNextDir() (int32, string) {
	args := m.Called()
	return args.Get(0).(int32), args.String(1)
}

func (m *MockEndpoint) ResetDir() int32 {
	args := m.Called()
	return args.Get(0).(int32)
}

func (m *MockEndpoint) SetDevice(devices []string, types []int32, values []int32) int32 {
	args := m.Called(devices, types, values)
	return args.Get(0).(int32)
}

func (m *MockEndpoint) ReadDevice() (int32, []int32) {
	args := m.Called()
	if args.Get(1) == nil {
		return args.Get(0).(int32), nil
	}

	return args.Get(0).(int32), args.Get(1).([]int32)
}

func (m *MockEndpoint) WriteDevice() int32 {
	args := m.Called()
	return args.Get(0).(int32)
}

func (m *MockEndpoint) DeleteAllDevices() int32 {
	args := m.Called()
	return args.Get(0).(int32)
}
