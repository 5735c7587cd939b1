package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/goa/v3/eval"
	"goa.design/goa/v3/expr"

	_ "fortiercars/api/design"
)

func TestRoutesMatchDesign(t *testing.T) {
	require.NoError(t, eval.RunDSL())

	designed := map[string]string{}
	for _, svc := range expr.Root.API.HTTP.Services {
		for _, e := range svc.HTTPEndpoints {
			for _, r := range e.Routes {
				designed[svc.Name()+"."+e.Name()] = r.Method + " " + r.Path
			}
		}
	}

	mounted := map[string]string{}
	for _, o := range operations(NewEndpoints(&Services{})) {
		mounted[o.service+"."+o.mount.Method] = o.mount.Verb + " " + o.mount.Pattern
	}
	assert.Equal(t, designed, mounted)
}
