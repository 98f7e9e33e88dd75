package scaffold

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Simple", input: "profile"},
		{name: "Pascal", input: "NewScreen"},
		{name: "Kebab", input: "user-detail"},
		{name: "Empty", input: "", wantErr: true},
		{name: "Inner Space", input: "new screen", wantErr: true},
		{name: "Trailing Space", input: "profile ", wantErr: true},
		{name: "Tab", input: "a\tb", wantErr: true},
		{name: "Slash", input: "admin/users", wantErr: true},
		{name: "Backslash", input: `admin\users`, wantErr: true},
		{name: "Parent Traversal", input: "../../../etc/x", wantErr: true},
		{name: "Dot Dot", input: "a..b", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateName("name", tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidName))
				assert.True(t, IsInvalidInput(err))
				assert.NotEmpty(t, errors.GetAllHints(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, got)
		})
	}
}

func TestCasing(t *testing.T) {
	testCases := []struct {
		input  string
		pascal string
		camel  string
	}{
		{input: "profile", pascal: "Profile", camel: "profile"},
		{input: "NewScreen", pascal: "NewScreen", camel: "newScreen"},
		{input: "user-detail", pascal: "UserDetail", camel: "userDetail"},
		{input: "blog_post", pascal: "BlogPost", camel: "blogPost"},
		{input: "", pascal: "", camel: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.pascal, ToPascalCase(tc.input))
			assert.Equal(t, tc.camel, ToCamelCase(tc.input))
		})
	}
}

func TestRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "Static Screen", req: Request{Kind: KindScreen, Name: "home"}},
		{name: "Dynamic Screen", req: Request{Kind: KindScreen, Name: "profile", Style: RouteDynamic, Param: "id"}},
		{name: "Dynamic Without Param", req: Request{Kind: KindScreen, Name: "profile", Style: RouteDynamic}, wantErr: ErrInvalidName},
		{name: "Dynamic Param With Space", req: Request{Kind: KindScreen, Name: "profile", Style: RouteDynamic, Param: "user id"}, wantErr: ErrInvalidName},
		{name: "Static With Param", req: Request{Kind: KindScreen, Name: "profile", Param: "id"}, wantErr: ErrInvalidRequest},
		{name: "Dynamic Component", req: Request{Kind: KindComponent, Name: "Card", Style: RouteDynamic, Param: "id"}, wantErr: ErrInvalidRequest},
		{name: "Empty Route", req: Request{Kind: KindRoute}, wantErr: ErrInvalidName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestParseRouteStyle(t *testing.T) {
	style, err := ParseRouteStyle("Dynamic")
	require.NoError(t, err)
	assert.Equal(t, RouteDynamic, style)

	style, err = ParseRouteStyle("")
	require.NoError(t, err)
	assert.Equal(t, RouteStatic, style)

	_, err = ParseRouteStyle("nested")
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}
