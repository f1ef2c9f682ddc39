package mocks

import mock "github.com/stretchr/testify/mock"

// DataDir is an autogenerated mock type for the DataDir type
type DataDir struct {
	mock.Mock
}

// Remove provides a mock function with given fields: dir
func (_m *DataDir) Remove(dir string) error {
	ret := _m.Called(dir)

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(dir)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Usage provides a mock function with given fields: dir
func (_m *DataDir) Usage(dir string) (int64, error) {
	ret := _m.Called(dir)

	var r0 int64
	if rf, ok := ret.Get(0).(func(string) int64); ok {
		r0 = rf(dir)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(dir)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
