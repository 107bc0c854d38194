package toast

// Info raises an info toast.
//
//	toast.Info(n, "Novo horário", "Você tem um agendamento às 14h")
func Info(n Notifier, title, description string) string {
	return n.Add(Input{Title: title, Description: description, Severity: SeverityInfo})
}

// Success raises a success toast.
//
//	toast.Success(n, "Sucesso", "Avatar atualizado!")
func Success(n Notifier, title, description string) string {
	return n.Add(Input{Title: title, Description: description, Severity: SeveritySuccess})
}

// Error raises an error toast.
//
//	toast.Error(n, "Erro no cadastro", "Ocorreu um erro ao fazer cadastro, tente novamente.")
func Error(n Notifier, title, description string) string {
	return n.Add(Input{Title: title, Description: description, Severity: SeverityError})
}

// ReportError turns a collaborator failure into an error toast using the
// error text as the description. A nil err raises nothing and returns "".
func ReportError(n Notifier, title string, err error) string {
	if err == nil {
		return ""
	}
	return Error(n, title, err.Error())
}
