package notifications

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
)

// customerBufferSize caps how many messages each customer keeps.
const customerBufferSize = 3

// CustomerRelationsSubscriber sends short status updates to customers, keyed
// by phone number, and promotes customers to the VIP list once their loyalty
// points qualify. Promotion happens at most once per customer.
type CustomerRelationsSubscriber struct {
	mutex    sync.Mutex
	messages map[string][]string
	vips     map[string]string
}

func NewCustomerRelationsSubscriber() *CustomerRelationsSubscriber {
	return &CustomerRelationsSubscriber{
		messages: make(map[string][]string),
		vips:     make(map[string]string),
	}
}

func (s *CustomerRelationsSubscriber) Name() string {
	return "customer-relations"
}

func (s *CustomerRelationsSubscriber) Notify(o *order.Order, change order.StatusChange) {
	cust := o.Customer()
	if cust == nil {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	phone := cust.Phone()
	message := fmt.Sprintf("hi %s, your order %s is now %s", cust.Name(), o.ID(), change.To())
	queue := append([]string{message}, s.messages[phone]...)
	if len(queue) > customerBufferSize {
		queue = queue[:customerBufferSize]
	}
	s.messages[phone] = queue

	if cust.IsVIP() {
		if _, promoted := s.vips[phone]; !promoted {
			s.vips[phone] = cust.Name()
		}
	}
}

// Messages returns the recent messages for a customer phone, newest first.
func (s *CustomerRelationsSubscriber) Messages(phone string) []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	queue := s.messages[phone]
	out := make([]string, len(queue))
	copy(out, queue)
	return out
}

// VIPCustomers lists the names of promoted customers, sorted for stable output.
func (s *CustomerRelationsSubscriber) VIPCustomers() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make([]string, 0, len(s.vips))
	for _, name := range s.vips {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
