package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/innnova/pending/internal/models/order"
	"github.com/innnova/pending/internal/orders"
	"github.com/innnova/pending/internal/whatsapp"
)

// orderScreen is the detail editor. An empty id means a new, not yet
// saved order; those have no complete or delete action.
func (a *App) orderScreen(ctx context.Context, id string) error {
	isNew := id == ""

	o := &order.Order{}
	if !isNew {
		loaded, err := a.orders.Get(ctx, id)
		if err != nil {
			a.logger.Errorf("error retrieving the document: %s", err)
			a.showAlert(err.Error())
			return nil
		}
		o = loaded
	}

	fmt.Fprintln(a.out, "Order")
	if err := a.editFields(o); err != nil {
		return err
	}

	for {
		actions := "save, edit, chat, back"
		if !isNew {
			if o.Status == order.Active {
				actions = "save, edit, complete, delete, chat, back"
			} else {
				actions = "save, edit, reopen, delete, chat, back"
			}
		}

		cmd, err := getSimpleText(a.reader, "Actions: "+actions, a.out)
		if err != nil {
			return err
		}

		switch strings.ToLower(cmd) {
		case "save":
			if isNew {
				if email, ok := a.session.Current(); ok {
					o.CreatorMail = email
				}
			}
			if _, err := a.orders.Save(ctx, o, isNew); err != nil {
				a.showAlert(err.Error())
				continue
			}
			fmt.Fprintln(a.out, "Order saved")
			return nil

		case "edit":
			if err := a.editFields(o); err != nil {
				return err
			}

		case "complete":
			if isNew {
				fmt.Fprintln(a.out, "Unknown action:", cmd)
				continue
			}
			if err := a.orders.SetStatus(ctx, o.ID, order.Completed); err != nil {
				a.showAlert(err.Error())
				continue
			}
			fmt.Fprintln(a.out, "Order completed")
			return nil

		case "reopen":
			if isNew {
				fmt.Fprintln(a.out, "Unknown action:", cmd)
				continue
			}
			if err := a.orders.SetStatus(ctx, o.ID, order.Active); err != nil {
				a.showAlert(err.Error())
				continue
			}
			fmt.Fprintln(a.out, "Order marked as pending")
			return nil

		case "delete":
			if isNew {
				fmt.Fprintln(a.out, "Unknown action:", cmd)
				continue
			}
			if err := a.orders.Delete(ctx, o.ID); err != nil {
				a.showAlert(err.Error())
				continue
			}
			fmt.Fprintln(a.out, "Order deleted")
			return nil

		case "chat":
			a.contact(o.Phone)

		case "back":
			return nil

		case "":

		default:
			fmt.Fprintln(a.out, "Unknown action:", cmd)
		}
	}
}

// editFields walks the user through every editable field. The amount
// left to pay is recomputed and shown after each amount edit, never
// entered directly.
func (a *App) editFields(o *order.Order) error {
	var err error

	if o.Name, err = getTextDefault(a.reader, "Order", o.Name, a.out); err != nil {
		return err
	}
	if o.Product, err = getTextDefault(a.reader, "Product", o.Product, a.out); err != nil {
		return err
	}
	if o.Client, err = getTextDefault(a.reader, "Client", o.Client, a.out); err != nil {
		return err
	}
	if o.Phone, err = getTextDefault(a.reader, "Phone", o.Phone, a.out); err != nil {
		return err
	}

	// Today stands in for the date picker's initial selection.
	today := time.Now().Format(order.DateLayout)
	orderDate := o.OrderDate
	if orderDate == "" {
		orderDate = today
	}
	if o.OrderDate, err = getTextDefault(a.reader, "Order date", orderDate, a.out); err != nil {
		return err
	}
	deliveryDate := o.DeliveryDate
	if deliveryDate == "" {
		deliveryDate = today
	}
	if o.DeliveryDate, err = getTextDefault(a.reader, "Delivery date", deliveryDate, a.out); err != nil {
		return err
	}

	if o.TotalAmount, err = getTextDefault(a.reader, "Total amount", o.TotalAmount, a.out); err != nil {
		return err
	}
	o.ToPayAmount = a.recompute(o)
	if o.PaidAmount, err = getTextDefault(a.reader, "Paid amount", o.PaidAmount, a.out); err != nil {
		return err
	}
	o.ToPayAmount = a.recompute(o)

	if o.Details, err = getTextDefault(a.reader, "Details", o.Details, a.out); err != nil {
		return err
	}

	return nil
}

func (a *App) recompute(o *order.Order) string {
	remaining := orders.ComputeRemaining(o.TotalAmount, o.PaidAmount)
	fmt.Fprintln(a.out, "To pay:", remaining)
	return remaining
}

// contact opens the WhatsApp chat for the order's phone number,
// falling back to the web form when the app cannot be resolved. As a
// last resort the link is printed for the user to follow manually.
func (a *App) contact(phone string) {
	link, err := whatsapp.Contact(phone, a.open)
	if err != nil {
		fmt.Fprintln(a.out, "Open manually:", whatsapp.WebLink(phone))
		return
	}
	fmt.Fprintln(a.out, "Opened", link)
}
