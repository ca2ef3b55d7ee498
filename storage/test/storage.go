package storagetest

import (
	"context"
	"os"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/trackhaus/trackhaus"
)

// TestSetup is implemented by each storage provider that wants to run the
// conformance tests in this package
type TestSetup interface {
	// Setup is called once before any test runs
	Setup(context.Context) error
	// CreateStorage is called before each test and should return a fresh
	// migrated storage, name is unique for each test and safe to use as a
	// database name
	CreateStorage(ctx context.Context, name string) (trackhaus.StorageService, error)
	// TearDown is called once after all tests ran
	TearDown(context.Context) error
}

func RunTests(t *testing.T, s TestSetup) {
	ctx := zerolog.New(os.Stdout).Level(zerolog.ErrorLevel).WithContext(context.Background())
	ctx = PutT(ctx, t)
	// do test setup
	err := s.Setup(ctx)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		err := s.TearDown(ctx)
		if err != nil {
			t.Error("failed to teardown", err)
		}
	}()

	suite := NewSuite(ctx, s)

	tests := gatherAllTests(suite)

	t.Run("Storage", func(t *testing.T) {
		for name, fn := range tests {
			t.Run(name, func(t *testing.T) {
				t.Parallel()

				err := suite.BeforeTest(t.Name())
				if err != nil {
					t.Error("failed test setup:", err)
					return
				}
				defer suite.AfterTest(t.Name())

				fn(t)
			})
		}
	})
}

type testFn func(t *testing.T)

// gatherAllTests returns all methods on suite that start with Test and take
// a single *testing.T
func gatherAllTests(suite *Suite) map[string]testFn {
	var tests = map[string]testFn{}
	rv := reflect.ValueOf(suite)
	for i := 0; i < rv.NumMethod(); i++ {
		name := rv.Type().Method(i).Name
		if !strings.HasPrefix(name, "Test") {
			continue
		}

		mv := rv.Method(i)
		mt := mv.Type()

		if mt.NumIn() != 1 || mt.NumOut() != 0 {
			continue
		}

		if mt.In(0).String() != "*testing.T" {
			continue
		}

		tests[name] = func(t *testing.T) {
			mv.Call([]reflect.Value{reflect.ValueOf(t)})
		}
	}
	return tests
}

func NewSuite(ctx context.Context, ts TestSetup) *Suite {
	return &Suite{
		ctx:        ctx,
		ToBeTested: ts,
		storageMap: make(map[string]trackhaus.StorageService),
	}
}

type Suite struct {
	ctx        context.Context
	ToBeTested TestSetup

	storageMu  sync.Mutex
	storageMap map[string]trackhaus.StorageService
}

// storageName turns a test name into something usable as a database name
func storageName(testName string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, testName)
}

func (suite *Suite) BeforeTest(testName string) error {
	s, err := suite.ToBeTested.CreateStorage(suite.ctx, storageName(testName))
	if err != nil {
		return err
	}

	suite.storageMu.Lock()
	suite.storageMap[testName] = s
	suite.storageMu.Unlock()
	return nil
}

func (suite *Suite) AfterTest(testName string) error {
	suite.storageMu.Lock()
	defer suite.storageMu.Unlock()
	if s, ok := suite.storageMap[testName]; ok {
		delete(suite.storageMap, testName)
		return s.Close()
	}
	return nil
}

func (suite *Suite) Storage(t *testing.T) trackhaus.StorageService {
	suite.storageMu.Lock()
	defer suite.storageMu.Unlock()

	return suite.storageMap[t.Name()]
}

// Context returns the suite context with t attached
func (suite *Suite) Context(t *testing.T) context.Context {
	return PutT(suite.ctx, t)
}

type testingKey struct{}

func CtxT(ctx context.Context) testing.TB {
	return ctx.Value(testingKey{}).(testing.TB)
}

func PutT(ctx context.Context, t testing.TB) context.Context {
	return context.WithValue(ctx, testingKey{}, t)
}
