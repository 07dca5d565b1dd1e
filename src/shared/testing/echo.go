package testing

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PrepareEchoContext builds a context for calling a gateway method
// directly. pathParams alternate name, value.
func PrepareEchoContext(request *http.Request, response http.ResponseWriter, pathParams ...string) echo.Context {
	e := echo.New()
	c := e.NewContext(request, response)

	names := []string{}
	values := []string{}
	for i := 0; i+1 < len(pathParams); i += 2 {
		names = append(names, pathParams[i])
		values = append(values, pathParams[i+1])
	}

	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}
