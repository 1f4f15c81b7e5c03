package brush

import (
	"scatterbrush/internal/chart"
	"scatterbrush/internal/surface"
)

// Reconciler mirrors a controlled selection into a Controller without the
// change being reported back as if the user had drawn it.
//
// While a controlled value is being applied the "applying" flag is set and
// every observer notification from the controller is dropped. The flag is
// set and cleared inside one synchronous call, so no other selection event
// can interleave on a single event loop. A host that drives the controller
// from several goroutines must instead funnel gesture and controlled events
// through one ordered queue owned by a single goroutine.
type Reconciler struct {
	ctrl     *Controller
	observer Observer

	applying   bool
	controlled *Selection
}

// NewReconciler takes over ctrl's notifications and forwards the ones
// caused by user gestures to obs.
func NewReconciler(ctrl *Controller, obs Observer) *Reconciler {
	r := &Reconciler{ctrl: ctrl, observer: obs}
	ctrl.observer = r.forward
	return r
}

func (r *Reconciler) forward(pts []chart.Point, sel *Selection) {
	if r.applying {
		return
	}
	if r.observer != nil {
		r.observer(pts, sel)
	}
}

// Controller returns the reconciled controller.
func (r *Reconciler) Controller() *Controller { return r.ctrl }

// Controlled returns the last controlled value, nil for none.
func (r *Reconciler) Controlled() *Selection {
	if r.controlled == nil {
		return nil
	}
	s := *r.controlled
	return &s
}

// SetControlled drives the brush from an externally supplied selection;
// nil clears it. Nothing happens when sel equals the previous controlled
// value. It reports whether the value changed. A non-finite selection is
// rejected with ErrInvalidSelection and leaves everything as it was. If
// the brush is not mounted the value is kept and shown on the next Mount.
func (r *Reconciler) SetControlled(sel *Selection) (bool, error) {
	if sameSelection(r.controlled, sel) {
		return false, nil
	}
	if sel != nil && !sel.Finite() {
		Logger().Warn("controlled selection rejected", "sel", sel.String())
		return false, ErrInvalidSelection
	}
	if sel == nil {
		r.controlled = nil
	} else {
		s := *sel
		r.controlled = &s
	}
	if !r.ctrl.Ready() {
		return true, nil
	}
	return true, r.apply()
}

// Mount remounts the controller on a new rendered tree and shows the
// controlled value on it, if any.
func (r *Reconciler) Mount(root *surface.Node, points []chart.Point) error {
	if err := r.ctrl.Mount(root, points); err != nil {
		return err
	}
	if r.controlled == nil {
		return nil
	}
	return r.apply()
}

func (r *Reconciler) apply() error {
	r.applying = true
	defer func() { r.applying = false }()
	if r.controlled == nil {
		r.ctrl.Clear()
		return nil
	}
	return r.ctrl.SetSelection(*r.controlled)
}
