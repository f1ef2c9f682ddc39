package mocks

import mock "github.com/stretchr/testify/mock"

// Flusher is an autogenerated mock type for the Flusher type
type Flusher struct {
	mock.Mock
}

// Flush provides a mock function with given fields: keyspace, table
func (_m *Flusher) Flush(keyspace string, table string) error {
	ret := _m.Called(keyspace, table)

	var r0 error
	if rf, ok := ret.Get(0).(func(string, string) error); ok {
		r0 = rf(keyspace, table)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
