// Pacote validators concentra validações que dependem de rede.
package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid confere se o domínio do e-mail resolve em DNS
// (MX ou, na falta, A/AAAA). Não garante caixa existente, só barra
// cadastro com domínio digitado errado.
func IsEmailDomainValid(email string) bool {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
