package endpoint

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/datacare-saude/datacare-backend/util"
)

// Authentication is deliberately non-functional: the companion intake UI
// has a login screen, but any non-empty credentials succeed and nothing is
// persisted or verified. Real authentication is out of scope.

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login accepts any non-empty email and password pair.
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	ci := struct{ IP, Agent string }{c.ClientIP(), c.Request.UserAgent()}

	if strings.TrimSpace(req.Email) == "" || req.Senha == "" {
		util.LogAuditEvent(util.AuditEvent{
			EventType: util.EventLoginFailure,
			IP:        ci.IP,
			UserAgent: ci.Agent,
			Message:   "login rejected: empty credentials",
		})
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Email and password are required",
			Err: fmt.Errorf("empty credentials"),
		})
		return
	}

	util.LogAuditEvent(util.AuditEvent{
		EventType: util.EventLoginSuccess,
		IP:        ci.IP,
		UserAgent: ci.Agent,
		Message:   "login accepted",
	})
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Login successful",
		Data: map[string]interface{}{"email": req.Email},
	})
}

type cadastroRequest struct {
	Nome          string `json:"nome"`
	CRM           string `json:"crm"`
	Especialidade string `json:"especialidade"`
	Telefone      string `json:"telefone"`
	Email         string `json:"email"`
	Senha         string `json:"senha"`
}

// Cadastro validates the physician signup form. It checks field presence
// only and persists nothing, mirroring the intake UI's placeholder flow.
func Cadastro(c *gin.Context) {
	var req cadastroRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	required := map[string]string{
		"nome":          req.Nome,
		"crm":           req.CRM,
		"especialidade": req.Especialidade,
		"email":         req.Email,
		"senha":         req.Senha,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "All required fields must be filled",
				Err: fmt.Errorf("missing field: %s", field),
			})
			return
		}
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Registration successful",
		Data: map[string]interface{}{"email": req.Email},
	})
}
