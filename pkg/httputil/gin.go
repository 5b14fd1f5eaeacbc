package httputil

import "github.com/gin-gonic/gin"

// TraceIDKey はGinコンテキストに格納するトレースIDのキー。
const TraceIDKey = "trace_id"

// TraceID はGinコンテキストからトレースIDを取得する。
func TraceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WriteError はProblemDetailをGinレスポンスとして書き込む。
// instanceが未設定の場合はトレースIDを設定する。
func WriteError(c *gin.Context, problem *ProblemDetail) {
	c.Header("Content-Type", ContentType)
	c.JSON(problem.Status, withTrace(c, problem))
}

// AbortWithError はProblemDetailをGinレスポンスとして書き込み、リクエスト処理を中断する。
func AbortWithError(c *gin.Context, problem *ProblemDetail) {
	c.Header("Content-Type", ContentType)
	c.AbortWithStatusJSON(problem.Status, withTrace(c, problem))
}

func withTrace(c *gin.Context, problem *ProblemDetail) *ProblemDetail {
	if problem.Instance != "" {
		return problem
	}
	if traceID := TraceID(c); traceID != "" {
		return problem.WithInstance(traceID)
	}
	return problem
}
