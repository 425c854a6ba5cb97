/*Package ui is the node's notification surface. Subsystems raise messages
and init-phase updates through an Interface; whoever renders them registers
as the handler. Only one handler is ever active for each signal — connecting
a new one replaces the previous one. */
package ui

import (
	"sync"
)

//Severity of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

/*Interface - the registration point for UI notifications. The zero value
discards everything until a handler is connected. */
type Interface struct {
	mu        sync.Mutex
	onMessage func(text string, sev Severity)
	onInit    func(text string)
}

//ConnectMessageHandler - replace the message handler
func (u *Interface) ConnectMessageHandler(f func(text string, sev Severity)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.onMessage = f
}

//ConnectInitHandler - replace the init-phase handler
func (u *Interface) ConnectInitHandler(f func(text string)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.onInit = f
}

//NotifyMessage - deliver a message to the connected handler, if any
func (u *Interface) NotifyMessage(text string, sev Severity) {
	u.mu.Lock()
	f := u.onMessage
	u.mu.Unlock()
	if f != nil {
		f(text, sev)
	}
}

//NotifyInit - deliver an init-phase update to the connected handler, if any
func (u *Interface) NotifyInit(text string) {
	u.mu.Lock()
	f := u.onInit
	u.mu.Unlock()
	if f != nil {
		f(text)
	}
}
