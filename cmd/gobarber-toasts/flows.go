package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/montgomery-finn/gobarber-web/pkg/toast"
)

// flow is a GoBarber page action and the toasts it raises.
type flow struct {
	Name    string
	Page    string
	Success toast.Input
	Failure toast.Input
}

// run raises the flow's toast through the provider in ctx.
func (f flow) run(ctx context.Context, fail bool) string {
	n := toast.Use(ctx)
	if fail {
		return n.Add(f.Failure)
	}
	return n.Add(f.Success)
}

var flows = []flow{
	{
		Name:    "sign-in",
		Page:    "SignIn",
		Success: toast.Input{Severity: toast.SeveritySuccess, Title: "Sucesso", Description: "Login efetuado com sucesso"},
		Failure: toast.Input{Severity: toast.SeverityError, Title: "Erro na autenticação", Description: "Ocorreu um erro ao fazer login. Confira os dados e tente novamente."},
	},
	{
		Name:    "sign-up",
		Page:    "SignUp",
		Success: toast.Input{Severity: toast.SeveritySuccess, Title: "Cadastro realizado!", Description: "Você já pode fazer login no GoBarber!"},
		Failure: toast.Input{Severity: toast.SeverityError, Title: "Erro no cadastro", Description: "Ocorreu um erro ao realizar cadastro. Tente novamente."},
	},
	{
		Name:    "forgot-password",
		Page:    "ForgotPassword",
		Success: toast.Input{Severity: toast.SeveritySuccess, Title: "E-mail de recuperação enviado", Description: "Enviamos um e-mail para confirmar a recuperação de senha, cheque sua caixa de entrada"},
		Failure: toast.Input{Severity: toast.SeverityError, Title: "Erro na recuperação de senha", Description: "Ocorreu um erro ao tentar realizar a recuperação de senha, tente novamente."},
	},
	{
		Name:    "reset-password",
		Page:    "ResetPassword",
		Success: toast.Input{Severity: toast.SeveritySuccess, Title: "Sucesso", Description: "Senha redefinida com sucesso"},
		Failure: toast.Input{Severity: toast.SeverityError, Title: "Erro na autenticação", Description: "Ocorreu um erro ao resetar sua senha, tente novamente."},
	},
	{
		Name:    "profile",
		Page:    "Profile",
		Success: toast.Input{Severity: toast.SeveritySuccess, Title: "Perfil atualizado!", Description: "Suas informações de perfil foram atualizadas com sucesso!"},
		Failure: toast.Input{Severity: toast.SeverityError, Title: "Erro no cadastro", Description: "Ocorreu um erro ao atualizar informações. Tente novamente."},
	},
	{
		Name:    "avatar",
		Page:    "Profile",
		Success: toast.Input{Severity: toast.SeveritySuccess, Title: "Sucesso", Description: "Avatar atualizado!"},
		// Avatar uploads have no failure toast; fall back to a bare error.
		Failure: toast.Input{Severity: toast.SeverityError, Title: "Erro no cadastro"},
	},
}

// lookupFlows returns the flows named in names, or all flows if names is
// empty.
func lookupFlows(names []string) ([]flow, error) {
	if len(names) == 0 {
		return flows, nil
	}
	byName := make(map[string]flow, len(flows))
	for _, f := range flows {
		byName[f.Name] = f
	}
	selected := make([]flow, 0, len(names))
	for _, name := range names {
		f, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown flow %q (available: %s)", name, strings.Join(flowNames(), ", "))
		}
		selected = append(selected, f)
	}
	return selected, nil
}

func flowNames() []string {
	names := make([]string, len(flows))
	for i, f := range flows {
		names[i] = f.Name
	}
	sort.Strings(names)
	return names
}
