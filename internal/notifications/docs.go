// Package notifications contains the listeners that react to order status
// changes. Each listener keeps its own bounded view of recent activity:
// the kitchen tracks what needs cooking, the floor staff track what needs
// serving, management tracks revenue, and customer relations tracks loyalty.
//
// Listeners attach to orders through the order.Subscriber interface and are
// notified synchronously after every recorded status change. All of them are
// safe for concurrent use.
package notifications
