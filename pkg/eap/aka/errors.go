package aka

import "errors"

// Challenge処理エラー
var (
	// ErrNotChallenge はEAP-Request/AKA-Challenge以外のメッセージを受け取った場合のエラー
	ErrNotChallenge = errors.New("not an AKA-Challenge request")

	// ErrNotChallengeResponse はEAP-Response/AKA-Challenge以外のメッセージを受け取った場合のエラー
	ErrNotChallengeResponse = errors.New("not an AKA-Challenge response")

	// ErrMissingAttribute は必須属性が含まれていない場合のエラー
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrAUTNMismatch はAUTNの検証（MAC-AまたはAMF）に失敗した場合のエラー
	ErrAUTNMismatch = errors.New("AUTN verification failed")

	// ErrRESMismatch は応答のRESが期待値と一致しない場合のエラー
	ErrRESMismatch = errors.New("AT_RES mismatch")
)
