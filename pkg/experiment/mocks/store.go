package mocks

import (
	compression "github.com/intelsdi-x/comprbench/pkg/compression"
	mock "github.com/stretchr/testify/mock"
)

// Store is an autogenerated mock type for the Store type
type Store struct {
	mock.Mock
}

// CreateTable provides a mock function with given fields: table, config
func (_m *Store) CreateTable(table string, config compression.Config) error {
	ret := _m.Called(table, config)

	var r0 error
	if rf, ok := ret.Get(0).(func(string, compression.Config) error); ok {
		r0 = rf(table, config)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DropTable provides a mock function with given fields: table
func (_m *Store) DropTable(table string) error {
	ret := _m.Called(table)

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(table)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Insert provides a mock function with given fields: table, partition, clustering, payload
func (_m *Store) Insert(table string, partition int, clustering int, payload string) error {
	ret := _m.Called(table, partition, clustering, payload)

	var r0 error
	if rf, ok := ret.Get(0).(func(string, int, int, string) error); ok {
		r0 = rf(table, partition, clustering, payload)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
