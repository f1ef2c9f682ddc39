package mocks

import (
	compression "github.com/intelsdi-x/comprbench/pkg/compression"
	experiment "github.com/intelsdi-x/comprbench/pkg/experiment"
	mock "github.com/stretchr/testify/mock"
)

// TrialRunner is an autogenerated mock type for the TrialRunner type
type TrialRunner struct {
	mock.Mock
}

// Run provides a mock function with given fields: config, repetitions
func (_m *TrialRunner) Run(config compression.Config, repetitions int) ([]experiment.Measurement, error) {
	ret := _m.Called(config, repetitions)

	var r0 []experiment.Measurement
	if rf, ok := ret.Get(0).(func(compression.Config, int) []experiment.Measurement); ok {
		r0 = rf(config, repetitions)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]experiment.Measurement)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(compression.Config, int) error); ok {
		r1 = rf(config, repetitions)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
