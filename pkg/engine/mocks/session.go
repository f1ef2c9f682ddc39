package mocks

import mock "github.com/stretchr/testify/mock"

// Session is an autogenerated mock type for the Session type
type Session struct {
	mock.Mock
}

// Close provides a mock function with given fields:
func (_m *Session) Close() {
	_m.Called()
}

// Exec provides a mock function with given fields: statement, values
func (_m *Session) Exec(statement string, values ...interface{}) error {
	var _ca []interface{}
	_ca = append(_ca, statement)
	_ca = append(_ca, values...)
	ret := _m.Called(_ca...)

	var r0 error
	if rf, ok := ret.Get(0).(func(string, ...interface{}) error); ok {
		r0 = rf(statement, values...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
