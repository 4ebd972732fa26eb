package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codearena/backend/auth"
	backendhttp "github.com/codearena/backend/http"
	"github.com/codearena/backend/judge0"
	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/subm"
	"github.com/codearena/backend/user"
)

var testJwtKey = []byte("test-jwt-key")

// newFakeJudgeServer returns a Judge0 stand-in that accepts any batch and
// reports every case with the given status id on the first poll.
func newFakeJudgeServer(t *testing.T, statusId int) *httptest.Server {
	t.Helper()
	mux := nethttp.NewServeMux()
	mux.HandleFunc("POST /submissions/batch", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			Submissions []judge0.SubmissionRequest `json:"submissions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(nethttp.StatusBadRequest)
			return
		}
		tokens := make([]map[string]string, len(req.Submissions))
		for i := range req.Submissions {
			tokens[i] = map[string]string{"token": fmt.Sprintf("tok-%d", i)}
		}
		json.NewEncoder(w).Encode(tokens)
	})
	mux.HandleFunc("GET /submissions/batch", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		tokens := strings.Split(r.URL.Query().Get("tokens"), ",")
		results := make([]judge0.SubmissionResult, len(tokens))
		for i, tok := range tokens {
			results[i] = judge0.SubmissionResult{
				Token:  tok,
				Status: judge0.Status{ID: statusId, Description: "scripted"},
				Time:   "0.10",
				Memory: 1234,
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"submissions": results})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

type serverEnv struct {
	handler nethttp.Handler

	submRepo *subm.InMemRepo
	users    *user.InMemRepo

	userUuid uuid.UUID
	token    string
}

func newServerEnv(t *testing.T, judgeStatusId int) *serverEnv {
	t.Helper()

	judgeServer := newFakeJudgeServer(t, judgeStatusId)
	judgeClient := judge0.NewClient(judge0.Config{
		BaseURL:         judgeServer.URL,
		PollInterval:    time.Millisecond,
		MaxPollAttempts: 5,
	})

	env := &serverEnv{
		submRepo: subm.NewInMemRepo(),
		users:    user.NewInMemRepo(),
		userUuid: uuid.New(),
	}

	problems := problem.NewInMemRepo()
	require.NoError(t, problems.Store(context.Background(), problem.Problem{
		ID:    "two-sum",
		Title: "Two Sum",
		VisibleTestCases: []problem.TestCase{
			{Input: "1 2", Output: "3"},
		},
		HiddenTestCases: []problem.TestCase{
			{Input: "1 2", Output: "3"},
			{Input: "4 5", Output: "9"},
		},
	}))

	require.NoError(t, env.users.Store(context.Background(), user.User{
		UUID:     env.userUuid,
		Username: "alice",
		Email:    "alice@example.com",
	}))

	token, err := auth.GenerateJWT("alice", "alice@example.com", env.userUuid, testJwtKey)
	require.NoError(t, err)
	env.token = token

	submSrvc := subm.NewSubmissionSrvc(env.submRepo, env.users, problems, judgeClient)
	env.handler = backendhttp.NewHttpServer(submSrvc, testJwtKey).Handler()

	return env
}

func (env *serverEnv) doJson(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+env.token)
	}
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (status string, code string, data json.RawMessage) {
	t.Helper()
	var envl struct {
		Status string          `json:"status"`
		Code   string          `json:"code"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envl))
	return envl.Status, envl.Code, envl.Data
}

func TestSubmitEndpointAccepted(t *testing.T) {
	env := newServerEnv(t, judge0.StatusAccepted)

	w := env.doJson(t, nethttp.MethodPost, "/submissions/two-sum/submit",
		map[string]string{"code": "int main() {}", "language": "c++"}, true)

	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())
	status, _, data := decodeEnvelope(t, w)
	assert.Equal(t, "success", status)

	var resp backendhttp.SubmissionResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, "accepted", resp.Status)
	assert.Equal(t, 2, resp.TestCasesPassed)
	assert.Equal(t, 2, resp.TestCasesTotal)
	assert.InDelta(t, 0.20, resp.Runtime, 1e-9)
	assert.Equal(t, 1234, resp.MemoryKb)

	u, err := env.users.Get(context.Background(), env.userUuid)
	require.NoError(t, err)
	assert.Equal(t, []string{"two-sum"}, u.SolvedProblems)
}

func TestSubmitEndpointWrongAnswer(t *testing.T) {
	env := newServerEnv(t, judge0.StatusWrongAnswer)

	w := env.doJson(t, nethttp.MethodPost, "/submissions/two-sum/submit",
		map[string]string{"code": "int main() {}", "language": "c++"}, true)

	// a judged failure is a normal outcome, not an error response
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())
	var resp backendhttp.SubmissionResponse
	_, _, data := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, "wrong", resp.Status)
	assert.Equal(t, 0, resp.TestCasesPassed)
	require.NotNil(t, resp.ErrorMessage)
}

func TestSubmitEndpointRequiresAuth(t *testing.T) {
	env := newServerEnv(t, judge0.StatusAccepted)

	w := env.doJson(t, nethttp.MethodPost, "/submissions/two-sum/submit",
		map[string]string{"code": "int main() {}", "language": "c++"}, false)

	require.Equal(t, nethttp.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, env.submRepo.Len())
}

func TestSubmitEndpointMissingCode(t *testing.T) {
	env := newServerEnv(t, judge0.StatusAccepted)

	w := env.doJson(t, nethttp.MethodPost, "/submissions/two-sum/submit",
		map[string]string{"language": "c++"}, true)

	require.Equal(t, nethttp.StatusBadRequest, w.Code)
	status, code, _ := decodeEnvelope(t, w)
	assert.Equal(t, "error", status)
	assert.Equal(t, subm.ErrCodeMissingField, code)
}

func TestSubmitEndpointUnsupportedLanguage(t *testing.T) {
	env := newServerEnv(t, judge0.StatusAccepted)

	w := env.doJson(t, nethttp.MethodPost, "/submissions/two-sum/submit",
		map[string]string{"code": "print(1)", "language": "python"}, true)

	require.Equal(t, nethttp.StatusBadRequest, w.Code)
	_, code, _ := decodeEnvelope(t, w)
	assert.Equal(t, judge0.ErrCodeUnsupportedLanguage, code)
}

func TestSubmitEndpointUnknownProblem(t *testing.T) {
	env := newServerEnv(t, judge0.StatusAccepted)

	w := env.doJson(t, nethttp.MethodPost, "/submissions/nope/submit",
		map[string]string{"code": "int main() {}", "language": "c++"}, true)

	require.Equal(t, nethttp.StatusNotFound, w.Code)
	_, code, _ := decodeEnvelope(t, w)
	assert.Equal(t, problem.ErrCodeProblemNotFound, code)
}

func TestRunEndpointReturnsPerCaseResults(t *testing.T) {
	env := newServerEnv(t, judge0.StatusAccepted)

	w := env.doJson(t, nethttp.MethodPost, "/submissions/two-sum/run",
		map[string]string{"code": "int main() {}", "language": "c++"}, true)

	require.Equal(t, nethttp.StatusOK, w.Code, w.Body.String())
	_, _, data := decodeEnvelope(t, w)

	var results []backendhttp.RunResultResponse
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 1) // visible cases only
	assert.True(t, results[0].Passed)
	assert.Equal(t, "1 2", results[0].Input)
	assert.Equal(t, "3", results[0].ExpectedOutput)

	// dry run persists nothing
	assert.Equal(t, 0, env.submRepo.Len())
}

func TestGetAndListSubmissions(t *testing.T) {
	env := newServerEnv(t, judge0.StatusAccepted)

	w := env.doJson(t, nethttp.MethodPost, "/submissions/two-sum/submit",
		map[string]string{"code": "int main() {}", "language": "c++"}, true)
	require.Equal(t, nethttp.StatusCreated, w.Code)

	var created backendhttp.SubmissionResponse
	_, _, data := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(data, &created))

	w = env.doJson(t, nethttp.MethodGet, "/submissions/"+created.Uuid, nil, true)
	require.Equal(t, nethttp.StatusOK, w.Code)
	var fetched backendhttp.SubmissionResponse
	_, _, data = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(data, &fetched))
	assert.Equal(t, created.Uuid, fetched.Uuid)
	assert.Equal(t, "accepted", fetched.Status)

	w = env.doJson(t, nethttp.MethodGet, "/problems/two-sum/submissions", nil, true)
	require.Equal(t, nethttp.StatusOK, w.Code)
	var listed []backendhttp.SubmissionResponse
	_, _, data = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.Uuid, listed[0].Uuid)
}

func TestListLanguages(t *testing.T) {
	env := newServerEnv(t, judge0.StatusAccepted)

	w := env.doJson(t, nethttp.MethodGet, "/languages", nil, false)
	require.Equal(t, nethttp.StatusOK, w.Code)

	_, _, data := decodeEnvelope(t, w)
	var langs []string
	require.NoError(t, json.Unmarshal(data, &langs))
	assert.Equal(t, []string{"c++", "java", "javascript"}, langs)
}
