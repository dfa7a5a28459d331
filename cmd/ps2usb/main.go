// Command ps2usb turns a legacy PS/2 keyboard into a USB HID
// keyboard.
package main

import (
	"log"
	"time"

	"ps2hid.dev/hid"
	"ps2hid.dev/ps2"
	"ps2hid.dev/status"
)

func main() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))

	plat, err := newPlatform()
	if err != nil {
		log.Fatalf("ps2usb: platform init: %v", err)
	}

	statusCtl := status.NewController(plat.LED())
	go statusCtl.Run()

	translator := &hid.Translator{
		Unknown: func(code byte, extended bool) {
			log.Printf("ps2usb: unknown scancode %#x (extended=%v)", code, extended)
			statusCtl.TriggerError(status.PS2Err)
		},
	}

	done := make(chan struct{})
	go runSupervisor(plat, translator, statusCtl, done)

	// Give the USB stack a moment to enumerate before leaving the
	// INIT blink pattern, mirroring the original firmware's wait
	// for host enumeration before declaring itself ready.
	time.Sleep(time.Second)
	statusCtl.SetState(status.Ready)
	<-done
}

// runSupervisor runs the read loop and restarts it if it crashes,
// the Go analogue of the original firmware's task-liveness polling
// around its PS/2 read task.
func runSupervisor(plat Platform, translator *hid.Translator, statusCtl *status.Controller, done chan struct{}) {
	for {
		crashed := make(chan struct{})
		go runReadLoop(plat, translator, statusCtl, crashed)
		<-crashed
		log.Print("ps2usb: read loop crashed, restarting")
		plat.SendReport(translator.ClearOnError())
		statusCtl.TriggerError(status.USBErr)
		time.Sleep(time.Second)
	}
}

// runReadLoop drains PS/2 frames, decodes them, and forwards key
// events to the HID translator. It recovers from panics so the
// supervisor can restart it.
func runReadLoop(plat Platform, translator *hid.Translator, statusCtl *status.Controller, crashed chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ps2usb: read loop panic: %v", r)
		}
		close(crashed)
	}()

	var parser ps2.Parser
	for {
		frame, ok := plat.PollFrame()
		if !ok {
			time.Sleep(time.Millisecond)
			continue
		}

		data, ok := ps2.DecodeFrame(frame)
		if !ok {
			plat.RecordRejected(frame)
			statusCtl.TriggerError(status.PS2Err)
			continue
		}

		ev, result := parser.Feed(data)
		switch result {
		case ps2.ResultAck:
			plat.Host().Ack()
		case ps2.ResultEvent:
			statusCtl.TriggerActivity()
			report, changed := translator.Handle(ev)
			if !changed {
				continue
			}
			if err := plat.SendReport(report); err != nil {
				log.Printf("ps2usb: send report: %v", err)
				empty := translator.ClearOnError()
				plat.SendReport(empty)
				statusCtl.TriggerError(status.USBErr)
			} else if statusCtl.State() == status.USBErr {
				statusCtl.SetState(status.Ready)
			}
		}
	}
}
