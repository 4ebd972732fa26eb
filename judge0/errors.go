package judge0

import (
	"fmt"
	"net/http"

	"github.com/codearena/backend/srvcerror"
)

const ErrCodeUnsupportedLanguage = "unsupported_language"

func ErrUnsupportedLanguage(name string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnsupportedLanguage,
		fmt.Sprintf("language %q is not supported", name),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeJudgeUnavailable = "judge_unavailable"

func ErrJudgeUnavailable() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeJudgeUnavailable,
		"code execution service is unavailable, please try again",
	).SetHttpStatusCode(http.StatusBadGateway)
}

const ErrCodeJudgeTimeout = "judge_timeout"

func ErrJudgeTimeout() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeJudgeTimeout,
		"code execution service did not finish in time, please try again",
	).SetHttpStatusCode(http.StatusGatewayTimeout)
}
