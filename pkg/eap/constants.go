package eap

import (
	"fmt"

	eapaka "github.com/oyaguma3/go-eapaka"
)

// Code はEAP Code（RFC 3748）。
type Code uint8

// EAP Code
const (
	CodeRequest  = Code(eapaka.CodeRequest)
	CodeResponse = Code(eapaka.CodeResponse)
	CodeSuccess  = Code(eapaka.CodeSuccess)
	CodeFailure  = Code(eapaka.CodeFailure)
)

var codeNames = map[Code]string{
	CodeRequest:  "Request",
	CodeResponse: "Response",
	CodeSuccess:  "Success",
	CodeFailure:  "Failure",
}

// String はCode名を返す。
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// TypeAKA はEAP-AKAのType値（RFC 4187）。
const TypeAKA = uint8(eapaka.TypeAKA)

// Subtype はEAP-AKA/EAP-SIMのSubtype。
type Subtype uint8

// Subtype値。0はSubtypeなし（ヘッダのみのメッセージ）を表す。
const (
	SubtypeNone                      Subtype = 0
	SubtypeAKAChallenge                      = Subtype(eapaka.SubtypeChallenge)
	SubtypeAKAAuthenticationReject           = Subtype(eapaka.SubtypeAuthenticationReject)
	SubtypeAKASynchronizationFailure         = Subtype(eapaka.SubtypeSynchronizationFailure)
	SubtypeAKAIdentity                       = Subtype(eapaka.SubtypeIdentity)
	SubtypeSIMStart                  Subtype = 10 // RFC 4186
	SubtypeSIMChallenge              Subtype = 11 // RFC 4186
	SubtypeNotification                      = Subtype(eapaka.SubtypeNotification)
	SubtypeReauthentication          Subtype = 13
	SubtypeClientError                       = Subtype(eapaka.SubtypeClientError)
)

var subtypeNames = map[Subtype]string{
	SubtypeAKAChallenge:              "AKA-Challenge",
	SubtypeAKAAuthenticationReject:   "AKA-Authentication-Reject",
	SubtypeAKASynchronizationFailure: "AKA-Synchronization-Failure",
	SubtypeAKAIdentity:               "AKA-Identity",
	SubtypeSIMStart:                  "SIM-Start",
	SubtypeSIMChallenge:              "SIM-Challenge",
	SubtypeNotification:              "AKA-Notification and SIM-Notification",
	SubtypeReauthentication:          "AKA-Reauthentication and SIM-Reauthentication",
	SubtypeClientError:               "AKA-Client-Error and SIM-Client-Error",
}

// String はSubtype名を返す。
func (s Subtype) String() string {
	if s == SubtypeNone {
		return "none"
	}
	if name, ok := subtypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Subtype(%d)", uint8(s))
}

// AttributeType はTLV属性のType値。
type AttributeType uint8

// 属性Type値（RFC 4187 / RFC 4186 およびベンダー拡張）
const (
	AtTypeRand            AttributeType = 1
	AtTypeAutn            AttributeType = 2
	AtTypeRes             AttributeType = 3
	AtTypeAuts            AttributeType = 4
	AtTypePadding         AttributeType = 6
	AtTypeNonceMT         AttributeType = 7
	AtTypePermanentIDReq  AttributeType = 10
	AtTypeMAC             AttributeType = 11
	AtTypeNotification    AttributeType = 12
	AtTypeAnyIDReq        AttributeType = 13
	AtTypeIdentity        AttributeType = 14
	AtTypeVersionList     AttributeType = 15
	AtTypeSelectedVersion AttributeType = 16
	AtTypeFullauthIDReq   AttributeType = 17
	AtTypeCounter         AttributeType = 19
	AtTypeCounterTooSmall AttributeType = 20
	AtTypeNonceS          AttributeType = 21
	AtTypeClientErrorCode AttributeType = 22
	AtTypeCustomIV        AttributeType = 126 // ベンダー拡張: PDM/podのIV
	AtTypeIV              AttributeType = 129
	AtTypeEncrData        AttributeType = 130
	AtTypeNextPseudonym   AttributeType = 132
	AtTypeNextReauthID    AttributeType = 133
	AtTypeCheckcode       AttributeType = 134
	AtTypeResultInd       AttributeType = 135
)

// UnrecognizedName は名前表にない属性Typeの表示名。
const UnrecognizedName = "unrecognized"

var attributeNames = map[AttributeType]string{
	AtTypeRand:            "AT_RAND",
	AtTypeAutn:            "AT_AUTN",
	AtTypeRes:             "AT_RES",
	AtTypeAuts:            "AT_AUTS",
	AtTypePadding:         "AT_PADDING",
	AtTypeNonceMT:         "AT_NONCE_MT",
	AtTypePermanentIDReq:  "AT_PERMANENT_ID_REQ",
	AtTypeMAC:             "AT_MAC",
	AtTypeNotification:    "AT_NOTIFICATION",
	AtTypeAnyIDReq:        "AT_ANY_ID_REQ",
	AtTypeIdentity:        "AT_IDENTITY",
	AtTypeVersionList:     "AT_VERSION_LIST",
	AtTypeSelectedVersion: "AT_SELECTED_VERSION",
	AtTypeFullauthIDReq:   "AT_FULLAUTH_ID_REQ",
	AtTypeCounter:         "AT_COUNTER",
	AtTypeCounterTooSmall: "AT_COUNTER_TOO_SMALL",
	AtTypeNonceS:          "AT_NONCE_S",
	AtTypeClientErrorCode: "AT_CLIENT_ERROR_CODE",
	AtTypeCustomIV:        "AT_CUSTOM_IV",
	AtTypeIV:              "AT_IV",
	AtTypeEncrData:        "AT_ENCR_DATA",
	AtTypeNextPseudonym:   "AT_NEXT_PSEUDONYM",
	AtTypeNextReauthID:    "AT_NEXT_REAUTH_ID",
	AtTypeCheckcode:       "AT_CHECKCODE",
	AtTypeResultInd:       "AT_RESULT_IND",
}

// String は属性名を返す。名前表にない場合は "unrecognized"。
func (t AttributeType) String() string {
	if name, ok := attributeNames[t]; ok {
		return name
	}
	return UnrecognizedName
}

// Recognized は名前表に存在するTypeかどうかを返す。
func (t AttributeType) Recognized() bool {
	_, ok := attributeNames[t]
	return ok
}
