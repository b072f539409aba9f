package manifest_test

import (
	"fmt"

	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/manifest"
)

func ExampleReceiver_AsXMLElement() {
	receiver, err := manifest.NewReceiverBuilder().
		SetName("com.example.PingReceiver").
		SetExported(false).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	el := receiver.AsXMLElement(entities.NewAndroidSchema())
	fmt.Println(el.Name())
	for _, a := range el.Attributes() {
		fmt.Printf("android:%s=%s (0x%08x)\n", a.Name, a.Value, a.ResourceID)
	}
	// Output:
	// receiver
	// android:name=com.example.PingReceiver (0x01010003)
	// android:exported=false (0x01010010)
}
